// Package format provides file format detection and input validation
// for the hwpx library.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a document format in the HWP family.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HWPX indicates a zip-packaged HWPML document (.hwpx).
	HWPX
	// HWP indicates a binary HWP 5.x compound-file document (.hwp).
	HWP
	// HWT indicates an HWP template file (.hwt).
	HWT
	// PDF indicates a PDF document (export target only).
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HWPX:
		return "HWPX"
	case HWP:
		return "HWP"
	case HWT:
		return "HWT"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HWPX:
		return ".hwpx"
	case HWP:
		return ".hwp"
	case HWT:
		return ".hwt"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hwpx":
		return HWPX
	case ".hwp":
		return HWP
	case ".hwt":
		return HWT
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// HWP 5.x files are OLE compound documents.
var compoundFileMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// DetectFromMagic checks file magic bytes to determine format. A ZIP
// signature alone is ambiguous; use DetectFromReader to inspect the
// archive contents.
func DetectFromMagic(data []byte) Format {
	if len(data) >= 8 && bytes.Equal(data[:8], compoundFileMagic) {
		return HWP
	}
	if len(data) >= 4 && data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}
	return Unknown
}

// DetectFromReader inspects content to determine format. It
// distinguishes HWPX from other ZIP-based formats by reading the
// archive's mimetype entry.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 8)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if f := DetectFromMagic(magic); f != Unknown {
		return f, nil
	}

	// ZIP signature: PK\x03\x04
	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive for the HWPX mimetype entry.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		data := make([]byte, 256)
		n, _ := rc.Read(data)
		rc.Close()
		if strings.Contains(string(data[:n]), "application/hwp+zip") {
			return HWPX, nil
		}
	}

	// A zip archive carrying Contents/content.hpf is HWPX even when the
	// mimetype entry is missing.
	for _, f := range zr.File {
		if f.Name == "Contents/content.hpf" {
			return HWPX, nil
		}
	}

	return Unknown, nil
}
