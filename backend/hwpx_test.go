package backend

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newEngine(t *testing.T) *HWPX {
	t.Helper()
	e := NewHWPX()
	if err := e.Connect(); err != nil {
		t.Fatal(err)
	}
	return e
}

func newDocument(t *testing.T) *HWPX {
	t.Helper()
	e := newEngine(t)
	if err := e.CreateDocument(); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestNotConnected(t *testing.T) {
	e := NewHWPX()
	if e.Connected() {
		t.Error("new engine reports connected")
	}
	if err := e.CreateDocument(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("CreateDocument = %v, want ErrNotConnected", err)
	}
	if _, err := e.GetText(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("GetText = %v, want ErrNotConnected", err)
	}
}

func TestNoDocument(t *testing.T) {
	e := newEngine(t)
	if err := e.InsertText("hi"); !errors.Is(err, ErrNoDocument) {
		t.Errorf("InsertText = %v, want ErrNoDocument", err)
	}
	if _, err := e.DocumentInfo(); !errors.Is(err, ErrNoDocument) {
		t.Errorf("DocumentInfo = %v, want ErrNoDocument", err)
	}
}

func TestCreateInsertSaveOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.hwpx")

	e := newDocument(t)
	if err := e.InsertText("first line"); err != nil {
		t.Fatal(err)
	}
	if err := e.InsertParagraph(); err != nil {
		t.Fatal(err)
	}
	if err := e.InsertText("second line"); err != nil {
		t.Fatal(err)
	}
	if err := e.SaveDocumentAs(path, "HWPX"); err != nil {
		t.Fatal(err)
	}

	e2 := newEngine(t)
	if err := e2.OpenDocument(path); err != nil {
		t.Fatal(err)
	}
	text, err := e2.GetText()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "first line") || !strings.Contains(text, "second line") {
		t.Errorf("reopened text = %q", text)
	}

	info, err := e2.DocumentInfo()
	if err != nil {
		t.Fatal(err)
	}
	if info.Backend != "hwpx" {
		t.Errorf("Backend = %q, want hwpx", info.Backend)
	}
	if info.Filename != "report.hwpx" {
		t.Errorf("Filename = %q", info.Filename)
	}
	if info.Modified {
		t.Error("freshly opened document reports modified")
	}
}

func TestSaveDocumentNeedsPath(t *testing.T) {
	e := newDocument(t)
	if err := e.SaveDocument(); !errors.Is(err, ErrSave) {
		t.Errorf("SaveDocument on pathless document = %v, want ErrSave", err)
	}
}

func TestSaveDocumentAsAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	e := newDocument(t)
	if err := e.SaveDocumentAs(filepath.Join(dir, "note"), "hwpx"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "note.hwpx")); err != nil {
		t.Errorf("expected note.hwpx on disk: %v", err)
	}
}

func TestSaveDocumentAsRejectsOtherFormats(t *testing.T) {
	e := newDocument(t)
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := e.SaveDocumentAs(path, "PDF"); !errors.Is(err, ErrFormat) {
		t.Errorf("SaveDocumentAs PDF = %v, want ErrFormat", err)
	}
	if err := e.SaveDocumentAs(path, "nonsense"); !errors.Is(err, ErrFormat) {
		t.Errorf("SaveDocumentAs nonsense = %v, want ErrFormat", err)
	}
}

func TestOpenDocumentErrors(t *testing.T) {
	e := newEngine(t)

	if err := e.OpenDocument(filepath.Join(t.TempDir(), "absent.hwpx")); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file = %v, want ErrNotFound", err)
	}

	docPath := filepath.Join(t.TempDir(), "legacy.hwp")
	if err := os.WriteFile(docPath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := e.OpenDocument(docPath); !errors.Is(err, ErrFormat) {
		t.Errorf("wrong extension = %v, want ErrFormat", err)
	}

	junk := filepath.Join(t.TempDir(), "junk.hwpx")
	if err := os.WriteFile(junk, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := e.OpenDocument(junk); !errors.Is(err, ErrFormat) {
		t.Errorf("corrupt archive = %v, want ErrFormat", err)
	}
}

func TestFindAndReplace(t *testing.T) {
	e := newDocument(t)
	if err := e.InsertText("alpha beta alpha"); err != nil {
		t.Fatal(err)
	}

	found, err := e.FindText("beta")
	if err != nil || !found {
		t.Errorf("FindText beta = %v, %v", found, err)
	}
	found, err = e.FindText("gamma")
	if err != nil || found {
		t.Errorf("FindText gamma = %v, %v", found, err)
	}

	n, err := e.ReplaceText("alpha", "omega", true)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("ReplaceText count = %d, want 2", n)
	}
	text, _ := e.GetText()
	if strings.Contains(text, "alpha") {
		t.Errorf("text still contains alpha: %q", text)
	}
}

func TestSetFontAppliesToLaterText(t *testing.T) {
	e := newDocument(t)
	if err := e.InsertText("plain"); err != nil {
		t.Fatal(err)
	}
	if err := e.SetFont(FontSpec{Name: "함초롬바탕", Size: 14, Bold: true}); err != nil {
		t.Fatal(err)
	}
	if err := e.InsertText("loud"); err != nil {
		t.Fatal(err)
	}

	para := e.Document().CurrentParagraph()
	if len(para.Runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(para.Runs))
	}
	if para.Runs[0].Style.Bold {
		t.Error("first run unexpectedly bold")
	}
	st := para.Runs[1].Style
	if !st.Bold || st.FontName != "함초롬바탕" || st.FontSize != 14 {
		t.Errorf("second run style = %+v", st)
	}
}

func TestMoveCursor(t *testing.T) {
	e := newDocument(t)
	if err := e.MoveCursor("DOC_BEGIN"); err != nil {
		t.Errorf("doc_begin = %v", err)
	}
	if err := e.MoveCursor("not-a-place"); !errors.Is(err, ErrFormat) {
		t.Errorf("unknown position = %v, want ErrFormat", err)
	}
	if err := e.MoveCursor("line_end"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("line_end = %v, want ErrUnsupported", err)
	}
}

func TestTableVerbs(t *testing.T) {
	e := newDocument(t)
	if err := e.CreateTable(2, 3); err != nil {
		t.Fatal(err)
	}
	if err := e.CreateTable(0, 3); !errors.Is(err, ErrFormat) {
		t.Errorf("zero rows = %v, want ErrFormat", err)
	}

	if err := e.SetCellText(1, 2, "corner"); err != nil {
		t.Fatal(err)
	}
	got, err := e.GetCellText(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != "corner" {
		t.Errorf("GetCellText = %q, want corner", got)
	}

	// Out of range reads are empty, writes fail.
	if got, _ := e.GetCellText(9, 9); got != "" {
		t.Errorf("out of range cell = %q, want empty", got)
	}
	if err := e.SetCellText(9, 9, "x"); err == nil {
		t.Error("expected error for out of range write")
	}

	if err := e.InsertRow(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("InsertRow = %v, want ErrUnsupported", err)
	}
	if err := e.DeleteRow(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("DeleteRow = %v, want ErrUnsupported", err)
	}
}

func TestGetCellTextNoTable(t *testing.T) {
	e := newDocument(t)
	got, err := e.GetCellText(0, 0)
	if err != nil || got != "" {
		t.Errorf("GetCellText without table = %q, %v; want empty, nil", got, err)
	}
	if err := e.SetCellText(0, 0, "x"); err == nil {
		t.Error("SetCellText without table should fail")
	}
}

func TestSetAlignment(t *testing.T) {
	e := newDocument(t)
	if err := e.SetAlignment("Center"); err != nil {
		t.Fatal(err)
	}
	if got := e.Document().CurrentParagraph().Alignment; got != "center" {
		t.Errorf("alignment = %q, want center", got)
	}
	if err := e.SetAlignment("diagonal"); !errors.Is(err, ErrFormat) {
		t.Errorf("bad alignment = %v, want ErrFormat", err)
	}
}

func TestExportPDFUnsupported(t *testing.T) {
	e := newDocument(t)
	err := e.ExportPDF(filepath.Join(t.TempDir(), "out.pdf"))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("ExportPDF = %v, want ErrUnsupported", err)
	}
}

func TestInsertImageMissingFile(t *testing.T) {
	e := newDocument(t)
	err := e.InsertImage(filepath.Join(t.TempDir(), "absent.png"), 0, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("InsertImage = %v, want ErrNotFound", err)
	}
}

func TestDisconnectDropsDocument(t *testing.T) {
	e := newDocument(t)
	if err := e.Disconnect(); err != nil {
		t.Fatal(err)
	}
	if e.Connected() {
		t.Error("still connected after Disconnect")
	}
	if err := e.InsertText("x"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("InsertText after disconnect = %v, want ErrNotConnected", err)
	}
}
