// Package backend defines the uniform capability surface for document
// engines and provides the pure HWPX engine built on the model, reader,
// and writer packages.
//
// Two kinds of engine implement [Engine]: the cross-platform HWPX
// engine in this package, and a native automation engine driving an
// installed word processor, registered at startup via [RegisterNative]
// when its platform requirements are met. Callers select an engine
// with [New] and never branch on which variant they got.
package backend

// Engine is the verb set shared by all document engines. Every
// operation reports failure through its error return; sentinel errors
// from this package classify the failure.
type Engine interface {
	// Name identifies the engine variant, e.g. "hwpx".
	Name() string
	// SupportedFormats lists the save formats the engine can produce.
	SupportedFormats() []string

	Connect() error
	Disconnect() error
	Connected() bool

	CreateDocument() error
	OpenDocument(path string) error
	SaveDocument() error
	SaveDocumentAs(path, format string) error
	CloseDocument() error

	InsertText(text string) error
	GetText() (string, error)
	FindText(text string) (bool, error)
	ReplaceText(find, replace string, all bool) (int, error)
	InsertParagraph() error
	MoveCursor(position string) error

	CreateTable(rows, cols int) error
	GetCellText(row, col int) (string, error)
	SetCellText(row, col int, text string) error
	InsertRow() error
	DeleteRow() error

	SetFont(font FontSpec) error
	SetAlignment(align string) error

	ExportPDF(path string) error

	DocumentInfo() (Info, error)
}

// FontSpec selects character formatting for subsequent insertions.
// Zero-valued Name and Size leave the current setting unchanged; Bold
// and Italic are applied as given.
type FontSpec struct {
	Name   string
	Size   int
	Bold   bool
	Italic bool
}

// Info describes the open document.
type Info struct {
	Path     string
	Filename string
	Modified bool
	Sections int
	Title    string
	Author   string
	Backend  string
}
