// Package imagex converts raw image bytes to and from the self-contained
// data-URL form photos are stored in.
package imagex

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// File is one upload input: the original filename plus its raw bytes.
type File struct {
	Name string
	Data []byte
}

var ErrNotDataURL = errors.New("not a data URL")

// IsImage reports whether the bytes look like an image, based on content
// sniffing rather than the filename.
func IsImage(data []byte) bool {
	return strings.HasPrefix(mimetype.Detect(data).String(), "image/")
}

// EncodeDataURL wraps raw bytes into a data URL with the sniffed media type,
// e.g. "data:image/png;base64,...".
func EncodeDataURL(data []byte) string {
	mt := mimetype.Detect(data)
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL parses a base64 data URL back into its media type and raw
// bytes. Used when a photo is written back out as a file.
func DecodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	mediaType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.Join(ErrNotDataURL, err)
	}
	return mediaType, data, nil
}
