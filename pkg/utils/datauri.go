package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid data URI")

func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// ParseDataURI splits a base64 "data:image/<type>;base64,<payload>" URI into
// its media type and decoded bytes.
func ParseDataURI(s string) (string, []byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok || payload == "" {
		return "", nil, ErrInvalidDataURI
	}
	mediaType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" || !strings.HasPrefix(mediaType, "image/") {
		return "", nil, ErrInvalidDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidDataURI
	}
	return mediaType, data, nil
}
