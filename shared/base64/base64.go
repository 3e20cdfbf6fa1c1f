// Package base64 reads data URIs such as "data:image/png;base64,iVBOR...".
package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrInvalidDataURI = errors.New("invalid data URI")

// GetContentType returns the media type of a data URI, or empty when file is not one.
func GetContentType(file string) string {
	if !strings.HasPrefix(file, dataPrefix) {
		return ""
	}

	end := strings.Index(file, base64Marker)
	if end == -1 {
		return ""
	}

	return file[len(dataPrefix):end]
}

// Decode returns the payload and media type of a data URI.
func Decode(file string) ([]byte, string, error) {
	contentType := GetContentType(file)
	if contentType == "" {
		return nil, "", ErrInvalidDataURI
	}

	encoded := file[strings.Index(file, base64Marker)+len(base64Marker):]

	data, err := stdBase64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}

	return data, contentType, nil
}

// DecodedSize estimates the payload size of a data URI without decoding it.
func DecodedSize(file string) int {
	idx := strings.Index(file, base64Marker)
	if idx == -1 {
		return len(file)
	}

	encoded := file[idx+len(base64Marker):]

	return stdBase64.StdEncoding.DecodedLen(len(encoded)) - strings.Count(encoded[max(0, len(encoded)-2):], "=")
}
