// Package mimetypes sniffs attachment content. The declared filename
// is never trusted: the type comes from the bytes.
package mimetypes

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown        MIME = "unknown"
	ApplicationPDF MIME = "application/pdf"
)

// Detect sniffs the content and returns the detected media type.
func Detect(content []byte) MIME {
	mt := mimetype.Detect(content)
	if mt == nil {
		return Unknown
	}
	return MIME(mt.String())
}

// Allowed reports whether the detected type may be attached to a
// story: text, images and PDF only. Executables and archives are
// rejected whatever their filename claims.
func Allowed(m MIME) bool {
	s := string(m)
	if strings.HasPrefix(s, "text/") || strings.HasPrefix(s, "image/") {
		return true
	}
	return m == ApplicationPDF
}
