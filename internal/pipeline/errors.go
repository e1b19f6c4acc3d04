package pipeline

import "errors"

// Error kinds surfaced to callers. Test with errors.Is.
var (
	// ErrImageDecode wraps any failure to read or decode the source image.
	ErrImageDecode = errors.New("image decode failed")
	// ErrFileWrite wraps any failure to write the output document.
	ErrFileWrite = errors.New("file write failed")
	// ErrEmptyImage is returned for images without pixels.
	ErrEmptyImage = errors.New("image has no pixels")
)
