// Package hwpx reads, builds, and writes HWPX word processor documents,
// the zip-and-XML format used by Hancom Office Hangul.
//
// Basic usage:
//
//	doc, err := hwpx.Open("report.hwpx")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(doc.AllText())
//
// Building a new document:
//
//	doc := hwpx.New()
//	doc.InsertText("안녕하세요")
//	if err := hwpx.Save(doc, "hello.hwpx"); err != nil {
//	    // handle error
//	}
//
// For scripted editing through a uniform verb surface, including the
// platform native engine when one is available, use NewEngine. The
// lower-level reader and writer packages are also available.
package hwpx

import (
	"github.com/tsawler/hwpx/backend"
	"github.com/tsawler/hwpx/internal/imagemeta"
	"github.com/tsawler/hwpx/model"
	"github.com/tsawler/hwpx/reader"
	"github.com/tsawler/hwpx/writer"
)

// Document is the in-memory representation of an HWPX file.
type Document = model.Document

// Open reads the HWPX archive at path into a Document.
func Open(path string) (*Document, error) {
	doc, err := reader.Read(path)
	if err != nil {
		return nil, err
	}
	doc.Sizer = imagemeta.Sizer
	return doc, nil
}

// New returns an empty Document with one section and one paragraph,
// ready for insertion.
func New() *Document {
	doc := model.NewDocument()
	doc.Sizer = imagemeta.Sizer
	return doc
}

// Save writes doc to path atomically. The previous file, if any, is
// kept as a .backup alongside the new one.
func Save(doc *Document, path string) error {
	return writer.Write(doc, path)
}

// NewEngine constructs an editing engine by preference. An empty
// preference or "auto" picks the platform native engine when present
// and the pure HWPX engine otherwise.
func NewEngine(preference string) (backend.Engine, error) {
	return backend.New(preference)
}
