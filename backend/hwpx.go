package backend

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tsawler/hwpx/format"
	"github.com/tsawler/hwpx/internal/imagemeta"
	"github.com/tsawler/hwpx/model"
	"github.com/tsawler/hwpx/reader"
	"github.com/tsawler/hwpx/writer"
)

// HWPX is the pure, cross-platform engine operating directly on HWPX
// archives. It is always available. PDF export requires the native
// automation engine and fails here with ErrUnsupported.
//
// The engine serializes nothing itself: callers must not share one
// HWPX value across goroutines without external locking.
type HWPX struct {
	doc       *model.Document
	connected bool

	// pending is the character style applied to future insertions,
	// set by SetFont.
	pending model.RunStyle
}

// NewHWPX returns an unconnected HWPX engine.
func NewHWPX() *HWPX {
	return &HWPX{}
}

// Name implements Engine.
func (e *HWPX) Name() string { return "hwpx" }

// SupportedFormats implements Engine. The pure engine only writes HWPX.
func (e *HWPX) SupportedFormats() []string { return []string{"HWPX"} }

// Connect marks the engine ready. There is no external process to
// attach to.
func (e *HWPX) Connect() error {
	e.connected = true
	return nil
}

// Disconnect drops the open document and marks the engine unavailable.
func (e *HWPX) Disconnect() error {
	e.doc = nil
	e.connected = false
	return nil
}

// Connected implements Engine.
func (e *HWPX) Connected() bool { return e.connected }

func (e *HWPX) checkConnected() error {
	if !e.connected {
		return ErrNotConnected
	}
	return nil
}

func (e *HWPX) document() (*model.Document, error) {
	if err := e.checkConnected(); err != nil {
		return nil, err
	}
	if e.doc == nil {
		return nil, ErrNoDocument
	}
	return e.doc, nil
}

// CreateDocument replaces any open document with a fresh empty one.
func (e *HWPX) CreateDocument() error {
	if err := e.checkConnected(); err != nil {
		return err
	}
	e.doc = model.NewDocument()
	e.doc.Sizer = imagemeta.Sizer
	e.pending = model.RunStyle{}
	return nil
}

// OpenDocument reads the HWPX file at path. Only .hwpx paths are
// accepted by this engine.
func (e *HWPX) OpenDocument(path string) error {
	if err := e.checkConnected(); err != nil {
		return err
	}
	if err := format.ValidatePath(path); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if format.Detect(abs) != format.HWPX {
		return fmt.Errorf("%w: hwpx engine only opens .hwpx files, got %s", ErrFormat, filepath.Base(abs))
	}

	doc, err := reader.Read(abs)
	if err != nil {
		switch {
		case errors.Is(err, reader.ErrNotFound):
			return fmt.Errorf("%w: %s", ErrNotFound, abs)
		case errors.Is(err, reader.ErrInvalidArchive):
			return fmt.Errorf("%w: %v", ErrFormat, err)
		}
		return err
	}
	doc.Sizer = imagemeta.Sizer
	e.doc = doc
	e.pending = model.RunStyle{}
	return nil
}

// SaveDocument writes the document back to its backing path.
func (e *HWPX) SaveDocument() error {
	doc, err := e.document()
	if err != nil {
		return err
	}
	if doc.Path() == "" {
		return fmt.Errorf("%w: document has no path, use SaveDocumentAs", ErrSave)
	}
	return e.write(doc, doc.Path())
}

// SaveDocumentAs writes the document to a new path. Formats other than
// HWPX fail; a missing .hwpx extension is appended.
func (e *HWPX) SaveDocumentAs(path, saveFormat string) error {
	doc, err := e.document()
	if err != nil {
		return err
	}
	if err := format.ValidateFormat(saveFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if !strings.EqualFold(saveFormat, "HWPX") {
		return fmt.Errorf("%w: hwpx engine only saves HWPX, not %s", ErrFormat, saveFormat)
	}
	if err := format.ValidatePath(path); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	if format.Detect(abs) != format.HWPX {
		abs += format.HWPX.Extension()
	}
	return e.write(doc, abs)
}

func (e *HWPX) write(doc *model.Document, path string) error {
	err := writer.Write(doc, path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, writer.ErrInvalidArchive):
		return fmt.Errorf("%w: %v", ErrFormat, err)
	default:
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
}

// CloseDocument drops the open document without saving.
func (e *HWPX) CloseDocument() error {
	if err := e.checkConnected(); err != nil {
		return err
	}
	e.doc = nil
	return nil
}

// InsertText appends text at the cursor using the pending font
// settings.
func (e *HWPX) InsertText(text string) error {
	doc, err := e.document()
	if err != nil {
		return err
	}
	doc.InsertStyledText(text, e.pending)
	return nil
}

// GetText implements Engine.
func (e *HWPX) GetText() (string, error) {
	doc, err := e.document()
	if err != nil {
		return "", err
	}
	return doc.AllText(), nil
}

// FindText reports whether text occurs anywhere in the document.
func (e *HWPX) FindText(text string) (bool, error) {
	doc, err := e.document()
	if err != nil {
		return false, err
	}
	return len(doc.FindText(text)) > 0, nil
}

// ReplaceText implements Engine, returning the substitution count.
func (e *HWPX) ReplaceText(find, replace string, all bool) (int, error) {
	doc, err := e.document()
	if err != nil {
		return 0, err
	}
	return doc.ReplaceText(find, replace, all), nil
}

// InsertParagraph implements Engine.
func (e *HWPX) InsertParagraph() error {
	doc, err := e.document()
	if err != nil {
		return err
	}
	doc.InsertParagraph()
	return nil
}

// MoveCursor moves the cursor to a symbolic position. Positions that
// validate but are only meaningful in the native engine (line and
// character motions) fail with ErrUnsupported.
func (e *HWPX) MoveCursor(position string) error {
	doc, err := e.document()
	if err != nil {
		return err
	}
	if err := format.ValidatePosition(position); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if !doc.MoveCursor(strings.ToLower(position)) {
		return fmt.Errorf("%w: cursor position %q", ErrUnsupported, position)
	}
	return nil
}

// CreateTable appends a table at the cursor after validating the
// dimensions against the accepted ranges.
func (e *HWPX) CreateTable(rows, cols int) error {
	doc, err := e.document()
	if err != nil {
		return err
	}
	if err := format.ValidateTableDimensions(rows, cols); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	doc.CreateTable(rows, cols)
	return nil
}

// currentTable returns the most recently created table, which is the
// table cell verbs operate on.
func (e *HWPX) currentTable() (*model.Table, error) {
	doc, err := e.document()
	if err != nil {
		return nil, err
	}
	tables := doc.Tables()
	if len(tables) == 0 {
		return nil, nil
	}
	return tables[len(tables)-1], nil
}

// GetCellText returns the text of a cell in the current table. Missing
// tables or out-of-range cells yield an empty string, not an error.
func (e *HWPX) GetCellText(row, col int) (string, error) {
	tbl, err := e.currentTable()
	if err != nil {
		return "", err
	}
	if tbl == nil {
		return "", nil
	}
	cell := tbl.Cell(row, col)
	if cell == nil {
		return "", nil
	}
	return cell.Text(), nil
}

// SetCellText replaces the text of a cell in the current table.
func (e *HWPX) SetCellText(row, col int, text string) error {
	tbl, err := e.currentTable()
	if err != nil {
		return err
	}
	if tbl == nil {
		return fmt.Errorf("%w: no table in document", ErrNoDocument)
	}
	if !tbl.SetCellText(row, col, text) {
		return fmt.Errorf("backend: cell (%d,%d) out of range for %dx%d table", row, col, tbl.Rows, tbl.Cols)
	}
	e.doc.SetModified(true)
	return nil
}

// InsertRow is not supported: table dimensions are fixed at creation.
func (e *HWPX) InsertRow() error {
	if _, err := e.document(); err != nil {
		return err
	}
	return fmt.Errorf("%w: row insertion", ErrUnsupported)
}

// DeleteRow is not supported: table dimensions are fixed at creation.
func (e *HWPX) DeleteRow() error {
	if _, err := e.document(); err != nil {
		return err
	}
	return fmt.Errorf("%w: row deletion", ErrUnsupported)
}

// SetFont merges font settings into the style applied to future
// insertions.
func (e *HWPX) SetFont(font FontSpec) error {
	if _, err := e.document(); err != nil {
		return err
	}
	if font.Name != "" {
		e.pending.FontName = font.Name
	}
	if font.Size > 0 {
		e.pending.FontSize = font.Size
	}
	e.pending.Bold = font.Bold
	e.pending.Italic = font.Italic
	return nil
}

// SetAlignment sets the alignment of the paragraph at the cursor.
func (e *HWPX) SetAlignment(align string) error {
	doc, err := e.document()
	if err != nil {
		return err
	}
	if err := format.ValidateAlignment(align); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	doc.SetParagraphAlignment(align)
	return nil
}

// ExportPDF always fails: PDF export needs the native automation
// engine.
func (e *HWPX) ExportPDF(path string) error {
	if _, err := e.document(); err != nil {
		return err
	}
	return fmt.Errorf("%w: PDF export requires the native automation engine", ErrUnsupported)
}

// InsertImage embeds the image at path at the cursor. Width and height
// are display pixels; zero uses the probed natural size. This
// capability is specific to the HWPX engine and not part of the common
// surface.
func (e *HWPX) InsertImage(path string, width, height int) error {
	doc, err := e.document()
	if err != nil {
		return err
	}
	if _, err := doc.InsertImage(path, width, height); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}
	return nil
}

// DocumentInfo implements Engine.
func (e *HWPX) DocumentInfo() (Info, error) {
	doc, err := e.document()
	if err != nil {
		return Info{}, err
	}
	filename := ""
	if doc.Path() != "" {
		filename = filepath.Base(doc.Path())
	}
	return Info{
		Path:     doc.Path(),
		Filename: filename,
		Modified: doc.Modified(),
		Sections: len(doc.Sections),
		Title:    doc.Metadata.Title,
		Author:   doc.Metadata.Author,
		Backend:  e.Name(),
	}, nil
}

// Document exposes the underlying model for callers that need direct
// access beyond the engine surface, such as the library facade.
func (e *HWPX) Document() *model.Document {
	return e.doc
}
