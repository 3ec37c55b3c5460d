package storage

import (
	"mime"
	"path/filepath"
	"strings"
)

// extraTypes covers extensions whose MIME type varies with the host's
// mime.types file.
var extraTypes = map[string]string{
	".json": "application/json",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// DetectContentType returns providedType when set, otherwise the type for
// the key's extension, falling back to application/octet-stream.
func DetectContentType(providedType, key string) string {
	if providedType != "" {
		return providedType
	}

	ext := strings.ToLower(filepath.Ext(key))
	if t, ok := extraTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

// IsImage reports whether contentType is any image format.
func IsImage(contentType string) bool {
	base, _, _ := strings.Cut(contentType, ";")
	return strings.HasPrefix(strings.TrimSpace(strings.ToLower(base)), "image/")
}
