package image

import "errors"

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidExpiry   = errors.New("invalid expiry option")

	// ErrStorageUnconfigured means blob-store credentials are absent. Reads
	// degrade in that state; writes surface this as a hard error.
	ErrStorageUnconfigured = errors.New("object storage is not configured")

	// ErrStorageWrite wraps a failed blob write. No metadata row exists when
	// this is returned.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrMetadataWrite wraps a failed row insert after a successful blob
	// write. The blob is deleted best-effort; if that also fails it stays
	// orphaned until reconciled out-of-band.
	ErrMetadataWrite = errors.New("metadata save failed")
)
