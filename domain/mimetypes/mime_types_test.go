package mimetypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Minimal real file headers, enough for magic byte sniffing.
var (
	pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	pdfHeader = []byte("%PDF-1.7\n%some pdf body")
	elfHeader = []byte{0x7F, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0}
	zipHeader = []byte{'P', 'K', 0x03, 0x04, 0, 0, 0, 0}
)

func TestDetect(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{"PNG image", pngHeader, "image/png"},
		{"PDF document", pdfHeader, "application/pdf"},
		{"Plain text", []byte("just some notes about the sprint"), "text/plain"},
		{"ZIP archive", zipHeader, "application/zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detected := string(Detect(tt.content))
			// Text detection may append a charset parameter
			req.True(strings.HasPrefix(detected, tt.want),
				"Detect() = %q, want prefix %q", detected, tt.want)
		})
	}
}

func TestAllowed(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name string
		mime MIME
		want bool
	}{
		{"Plain text", "text/plain; charset=utf-8", true},
		{"PNG image", "image/png", true},
		{"JPEG image", "image/jpeg", true},
		{"PDF document", ApplicationPDF, true},
		{"ZIP archive", "application/zip", false},
		{"Executable", "application/x-executable", false},
		{"Octet stream", "application/octet-stream", false},
		{"Unknown", Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, Allowed(tt.mime), tt.name)
		})
	}
}

func TestDetect_Executable_Is_Rejected(t *testing.T) {
	req := require.New(t)
	// An executable renamed to notes.txt still gets rejected
	req.False(Allowed(Detect(elfHeader)))
}
