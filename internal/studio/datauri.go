package studio

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

var (
	ErrMalformedDataURI = errors.New("malformed data URI")
	ErrUnsupportedImage = errors.New("unsupported image format")
)

// ParseDataURI splits data:<mime>;base64,<body> into its MIME type and body.
func ParseDataURI(uri string) (mime, body string, err error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return "", "", ErrMalformedDataURI
	}
	header, body, ok := strings.Cut(rest, ",")
	if !ok || body == "" {
		return "", "", ErrMalformedDataURI
	}
	mime, _, _ = strings.Cut(header, ";")
	return strings.ToLower(strings.TrimSpace(mime)), body, nil
}

// EncodeDataURI reads image bytes into a data URI. The MIME type comes from
// the file extension, then from content sniffing.
func EncodeDataURI(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrMalformedDataURI)
	}
	mime := mimeFromExt(name)
	if mime == "" {
		mime, _, _ = strings.Cut(http.DetectContentType(data), ";")
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func mimeFromExt(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return ""
}
