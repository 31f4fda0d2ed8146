package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse wraps data with a human readable message.
func SuccessResponse(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Message: err,
		Error:   err,
	}
}

// ValidationErrorResponse carries field level problems alongside the message.
func ValidationErrorResponse(message string, errs interface{}) Response {
	return Response{
		Success: false,
		Message: message,
		Error:   message,
		Errors:  errs,
	}
}
