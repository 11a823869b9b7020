package models

import (
	"errors"
)

var (
	ErrUnknownTask = errors.New("unknown task")

	// Upload problems are recoverable and reported against one panel only.
	ErrEmptyUpload       = errors.New("uploaded file is empty")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMalformedRow      = errors.New("malformed row")
	ErrInvalidEncoding   = errors.New("invalid text encoding")
	ErrUploadTooLarge    = errors.New("uploaded file too large")

	ErrLabelCountMismatch = errors.New("predictor returned wrong number of labels")
	ErrUnexpectedLabel    = errors.New("unexpected label for binary task")
	ErrArtifactMissing    = errors.New("required artifact missing")
)

// IsUploadError reports whether err describes a bad upload rather than an
// internal failure.
func IsUploadError(err error) bool {
	return errors.Is(err, ErrEmptyUpload) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrMalformedRow) ||
		errors.Is(err, ErrInvalidEncoding) ||
		errors.Is(err, ErrUploadTooLarge)
}
