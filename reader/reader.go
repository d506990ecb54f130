// Package reader parses HWPX archives into the model representation.
//
// An HWPX file is a ZIP container holding a package descriptor
// (Contents/content.hpf) that lists the section XML parts making up the
// document body. Read locates the descriptor, extracts document
// metadata from it, and parses each referenced section:
//
//	doc, err := reader.Read("document.hwpx")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(doc.AllText())
//
// Parsing is deliberately tolerant: a malformed descriptor falls back
// to scanning archive entry names, malformed metadata is ignored, and a
// malformed section yields an empty section rather than failing the
// whole read. Only a missing file or an unreadable ZIP container is an
// error.
package reader

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tsawler/hwpx/model"
)

// Reader errors.
var (
	// ErrNotFound reports a missing input file.
	ErrNotFound = errors.New("reader: file not found")
	// ErrInvalidArchive reports a file that is not a readable ZIP
	// container.
	ErrInvalidArchive = errors.New("reader: not a valid HWPX archive")
)

// packageDescriptor is the archive entry listing all other parts.
const packageDescriptor = "Contents/content.hpf"

// Read parses the HWPX file at path and returns the populated document.
// The returned document has its path set and its dirty flag clear.
func Read(path string) (*model.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArchive, path)
	}
	defer zr.Close()

	doc := model.NewDocument()
	doc.Sections = nil

	// The descriptor is parsed once; it feeds both the metadata
	// extraction and section discovery.
	var descriptor *xmlNode
	if data, err := readEntry(&zr.Reader, packageDescriptor); err == nil {
		if root, err := parseXML(data); err == nil {
			descriptor = root
		}
	}

	if descriptor != nil {
		doc.Metadata = readMetadata(descriptor)
	}

	for _, name := range sectionParts(&zr.Reader, descriptor) {
		data, err := readEntry(&zr.Reader, name)
		if err != nil {
			continue
		}
		doc.Sections = append(doc.Sections, parseSection(data, sectionID(name)))
	}

	// A document is never empty: synthesize a default section when the
	// archive yielded none.
	if len(doc.Sections) == 0 {
		doc.Sections = append(doc.Sections, model.NewSection("sec_0"))
	}

	doc.SetPath(path)
	doc.SetModified(false)
	return doc, nil
}

// sectionParts returns the archive entry names of the section XML
// parts, in document order. Order comes from the parsed package
// descriptor's manifest; when the descriptor is missing or lists no
// sections, entry names are scanned directly and sorted lexically.
func sectionParts(zr *zip.Reader, descriptor *xmlNode) []string {
	var parts []string

	if descriptor != nil {
		descriptor.walk(func(n *xmlNode) bool {
			href := n.attr("href")
			if isSectionPart(href) {
				if !strings.HasPrefix(href, "Contents/") {
					href = "Contents/" + href
				}
				if hasEntry(zr, href) {
					parts = append(parts, href)
				}
			}
			return true
		})
	}

	if len(parts) == 0 {
		for _, f := range zr.File {
			if isSectionPart(f.Name) {
				parts = append(parts, f.Name)
			}
		}
		sort.Strings(parts)
	}

	return parts
}

// isSectionPart reports whether a part reference names a section XML
// file, matching case-insensitively.
func isSectionPart(href string) bool {
	lower := strings.ToLower(href)
	return strings.Contains(lower, "section") && strings.HasSuffix(lower, ".xml")
}

// sectionID derives the section id from its entry name:
// "Contents/section0.xml" becomes "section0".
func sectionID(name string) string {
	base := name
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	return strings.TrimSuffix(base, ".xml")
}

func hasEntry(zr *zip.Reader, name string) bool {
	for _, f := range zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

func readEntry(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("reader: entry not found: %s", name)
}

// readMetadata best-effort-extracts document metadata from the parsed
// package descriptor. Unrecognized content leaves the fields at their
// defaults.
func readMetadata(root *xmlNode) model.Metadata {
	var meta model.Metadata

	root.walk(func(n *xmlNode) bool {
		if !strings.Contains(strings.ToLower(n.Name), "metadata") {
			return true
		}
		for _, child := range n.Children {
			name := strings.ToLower(child.Name)
			text := strings.TrimSpace(child.Text)
			switch {
			case strings.Contains(name, "title"):
				meta.Title = text
			case strings.Contains(name, "creator"), strings.Contains(name, "author"):
				meta.Author = text
			case strings.Contains(name, "subject"):
				meta.Subject = text
			case strings.Contains(name, "date"):
				if strings.Contains(child.attr("event"), "created") {
					meta.Created = text
				} else {
					meta.Modified = text
				}
			}
		}
		return false
	})

	return meta
}
