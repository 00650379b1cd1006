package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writePGM(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.pgm")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadPGM(t *testing.T) {
	path := writePGM(t, []byte("P5\n# test pattern\n3 2\n255\n\x00\x40\x80\xc0\xff\x10"))

	img, err := loadPGM(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("dims = %dx%d, expected 3x2", img.Width(), img.Height())
	}
	if img.At(1, 0) != 0x40 || img.At(2, 1) != 0x10 {
		t.Fatalf("pixel values %v, %v do not match the file", img.At(1, 0), img.At(2, 1))
	}
}

func TestLoadPGMRejectsMalformedHeaders(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"wrong magic", []byte("P2\n3 2\n255\n")},
		{"negative width", []byte("P5\n-3 4\n255\n")},
		{"zero height", []byte("P5\n4 0\n255\n")},
		{"zero maxval", []byte("P5\n3 2\n0\n")},
		{"16-bit maxval", []byte("P5\n3 2\n65535\n")},
		{"non-numeric token", []byte("P5\nab 2\n255\n")},
		{"truncated header", []byte("P5\n3")},
		{"truncated pixels", []byte("P5\n3 2\n255\n\x00\x01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePGM(t, tt.content)
			if _, err := loadPGM(path); err == nil {
				t.Fatal("expected an error for a malformed file")
			}
		})
	}
}
