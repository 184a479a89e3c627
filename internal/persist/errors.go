package persist

import "errors"

// Common errors.
var (
	ErrInvalidFormat      = errors.New("not a glyph model file")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
)
