package storage

import "github.com/google/uuid"

var extensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/avif":    ".avif",
}

// ObjectKey builds a unique key under prefix for an object of contentType.
func ObjectKey(prefix, contentType string) string {
	return prefix + "/" + uuid.NewString() + extensions[contentType]
}
