package qrcode

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 128
	MaxSize     = 1024
)

// QRService renders links as PNG QR codes for printed brochures and posters.
type QRService struct {
	level qrcode.RecoveryLevel
}

func NewQRService() *QRService {
	return &QRService{level: qrcode.Medium}
}

// ClampSize maps a requested edge length onto the supported range. Zero or
// negative means the default.
func ClampSize(size int) int {
	switch {
	case size <= 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	}
	return size
}

// GenerateQRCode returns a size x size PNG encoding link.
func (s *QRService) GenerateQRCode(link string, size int) ([]byte, error) {
	if link == "" {
		return nil, errors.New("link is empty")
	}

	png, err := qrcode.Encode(link, s.level, ClampSize(size))
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
