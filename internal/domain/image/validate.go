package image

import "strings"

// MaxFileSize is enforced both client-side (fast fail) and here: the client
// check is bypassable, so the server ceiling is authoritative.
const MaxFileSize = 10 * 1024 * 1024 // 10 MiB

// AcceptedTypes lists the only content types an upload may declare.
var AcceptedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateUpload checks a candidate's declared content type and byte length
// before any storage or database call. The declared type is not re-sniffed
// beyond this membership check.
func ValidateUpload(contentType string, size int64) error {
	if size == 0 {
		return ErrEmptyFile
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if !AcceptedTypes[contentType] {
		return ErrUnsupportedType
	}
	return nil
}
