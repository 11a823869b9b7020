package util

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"lensx/internal/models"
)

const maxBinaryCheckBytes = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IsLikelyBinary reports whether the first bytes of data contain a NUL.
func IsLikelyBinary(data []byte) bool {
	n := len(data)
	if n > maxBinaryCheckBytes {
		n = maxBinaryCheckBytes
	}
	return bytes.IndexByte(data[:n], 0) >= 0
}

// DecodeText turns uploaded bytes into a string. A leading UTF-8 BOM is
// dropped; binary or non-UTF-8 content is rejected rather than repaired so
// samples reach the predictor exactly as written.
func DecodeText(data []byte, src string) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if IsLikelyBinary(data) {
		return "", fmt.Errorf("%w: %s looks like a binary file", models.ErrInvalidEncoding, src)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", models.ErrInvalidEncoding, src)
	}
	return string(data), nil
}
