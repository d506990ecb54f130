package model

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Metadata contains document-level information. All fields are plain
// strings, empty by default; timestamps keep whatever format the source
// archive carried.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Created  string
	Modified string
}

// Symbolic cursor positions accepted by [Document.MoveCursor].
const (
	PosDocBegin = "doc_begin"
	PosDocEnd   = "doc_end"
	PosNextPara = "next_para"
	PosPrevPara = "prev_para"
)

// Document is the in-memory representation of an HWPX document.
type Document struct {
	Metadata Metadata
	Sections []*Section

	// Styles maps style IDs to their raw properties. The table is
	// opaque to the model; it is carried so a read-modify-write cycle
	// keeps style references resolvable.
	Styles map[string]map[string]string

	// Sizer, when set, probes natural pixel dimensions for
	// InsertImage. Nil degrades to caller-supplied dimensions.
	Sizer ImageSizer

	curSection int
	curPara    int
	modified   bool
	path       string
}

// NewDocument creates an empty document with one section holding one
// empty paragraph, cursor at the start.
func NewDocument() *Document {
	sec := &Section{ID: "sec_0"}
	sec.Paragraphs = []*Paragraph{NewParagraph("para_0")}
	return &Document{
		Sections: []*Section{sec},
		Styles:   make(map[string]map[string]string),
	}
}

// Path returns the backing file path, empty for unsaved documents.
func (d *Document) Path() string { return d.path }

// SetPath records the backing file path. Used by the reader and writer
// after a successful open or save.
func (d *Document) SetPath(path string) { d.path = path }

// Modified reports whether the document has unsaved changes.
func (d *Document) Modified() bool { return d.modified }

// SetModified sets the dirty flag. The writer clears it after a
// successful save.
func (d *Document) SetModified(modified bool) { d.modified = modified }

// CurrentSection returns the section at the cursor.
func (d *Document) CurrentSection() *Section {
	return d.Sections[d.curSection]
}

// CurrentParagraph returns the paragraph at the cursor. A cursor past
// the end of the section clamps to the last paragraph.
func (d *Document) CurrentParagraph() *Paragraph {
	sec := d.CurrentSection()
	if d.curPara < len(sec.Paragraphs) {
		return sec.Paragraphs[d.curPara]
	}
	return sec.Paragraphs[len(sec.Paragraphs)-1]
}

// InsertText appends an unstyled run to the paragraph at the cursor.
func (d *Document) InsertText(text string) {
	d.InsertStyledText(text, RunStyle{})
}

// InsertStyledText appends a run with the given character style to the
// paragraph at the cursor.
func (d *Document) InsertStyledText(text string, style RunStyle) {
	d.CurrentParagraph().AddRun(Run{Text: text, Style: style})
	d.modified = true
}

// InsertParagraph appends a new empty paragraph to the current section
// and advances the cursor to it.
func (d *Document) InsertParagraph() {
	sec := d.CurrentSection()
	p := NewParagraph(fmt.Sprintf("para_%d", len(sec.Paragraphs)))
	sec.Paragraphs = append(sec.Paragraphs, p)
	d.curPara = len(sec.Paragraphs) - 1
	d.modified = true
}

// CreateTable appends a rows×cols table to the current section and
// returns it. Dimensions are not validated here; the calling layer must
// reject invalid ranges first (see format.ValidateTableDimensions).
func (d *Document) CreateTable(rows, cols int) *Table {
	sec := d.CurrentSection()
	t := NewTable(fmt.Sprintf("table_%d", len(sec.Tables)), rows, cols)
	sec.Tables = append(sec.Tables, t)
	d.modified = true
	return t
}

// InsertImage appends an image referencing the file at path to the
// current section. Width and height are display dimensions in pixels;
// zero means "use the natural size". Natural dimensions come from the
// injected Sizer when available, otherwise the supplied values are
// used. The returned error is non-nil only when the source file does
// not exist.
func (d *Document) InsertImage(path string, width, height int) (*Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("model: image source %q: %w", path, err)
	}

	origWidth, origHeight := width, height
	if d.Sizer != nil {
		if w, h, ok := d.Sizer(path); ok {
			origWidth, origHeight = w, h
		}
	}

	if width == 0 {
		width = origWidth
	}
	if height == 0 {
		height = origHeight
	}

	sec := d.CurrentSection()
	n := len(sec.Images) + 1
	img := &Image{
		ID:         fmt.Sprintf("img_%d", n),
		Path:       path,
		BinaryID:   fmt.Sprintf("image%d", n),
		Width:      width * UnitsPerPixel,
		Height:     height * UnitsPerPixel,
		OrigWidth:  origWidth * UnitsPerPixel,
		OrigHeight: origHeight * UnitsPerPixel,
		MediaType:  MediaTypeForPath(path),
	}
	sec.Images = append(sec.Images, img)
	d.modified = true
	return img, nil
}

// Match locates one occurrence of a search query in the document.
type Match struct {
	Section   int // section index
	Paragraph int // paragraph index within the section
	Offset    int // character offset into paragraph plain text
}

// FindText returns every textual match of query across paragraph plain
// text, in section/paragraph order. The scan restarts one character
// after each hit, so overlapping matches are reported: searching "aa"
// in "aaa" yields offsets 0 and 1.
func (d *Document) FindText(query string) []Match {
	if query == "" {
		return nil
	}
	var matches []Match
	for si, sec := range d.Sections {
		for pi, para := range sec.Paragraphs {
			text := para.Text()
			start := 0
			for {
				pos := strings.Index(text[start:], query)
				if pos < 0 {
					break
				}
				pos += start
				matches = append(matches, Match{
					Section:   si,
					Paragraph: pi,
					Offset:    utf8.RuneCountInString(text[:pos]),
				})
				_, size := utf8.DecodeRuneInString(text[pos:])
				start = pos + size
			}
		}
	}
	return matches
}

// ReplaceText substitutes find with replace across the whole document,
// scanning runs in section/paragraph/run order. When all is false only
// the first occurrence in the first matching run is replaced and the
// count is 1. When all is true every occurrence in every run is
// replaced. The count is the number of substitutions performed, even
// when the replacement text itself contains the search string.
func (d *Document) ReplaceText(find, replace string, all bool) int {
	if find == "" {
		return 0
	}
	count := 0
	for _, sec := range d.Sections {
		for _, para := range sec.Paragraphs {
			for i := range para.Runs {
				run := &para.Runs[i]
				n := strings.Count(run.Text, find)
				if n == 0 {
					continue
				}
				if all {
					run.Text = strings.ReplaceAll(run.Text, find, replace)
					count += n
				} else {
					run.Text = strings.Replace(run.Text, find, replace, 1)
					d.modified = true
					return 1
				}
			}
		}
	}
	if count > 0 {
		d.modified = true
	}
	return count
}

// MoveCursor moves the cursor to a symbolic position: doc_begin,
// doc_end, next_para, or prev_para. next_para and prev_para cross
// section boundaries but stop at the first and last paragraph of the
// document. Unrecognized positions return false without side effects.
func (d *Document) MoveCursor(position string) bool {
	switch position {
	case PosDocBegin:
		d.curSection = 0
		d.curPara = 0
	case PosDocEnd:
		d.curSection = len(d.Sections) - 1
		d.curPara = len(d.CurrentSection().Paragraphs) - 1
	case PosNextPara:
		if d.curPara < len(d.CurrentSection().Paragraphs)-1 {
			d.curPara++
		} else if d.curSection < len(d.Sections)-1 {
			d.curSection++
			d.curPara = 0
		}
	case PosPrevPara:
		if d.curPara > 0 {
			d.curPara--
		} else if d.curSection > 0 {
			d.curSection--
			d.curPara = len(d.CurrentSection().Paragraphs) - 1
		}
	default:
		return false
	}
	return true
}

// SetParagraphAlignment sets the alignment of the paragraph at the
// cursor. Unknown values are rejected without mutating state.
func (d *Document) SetParagraphAlignment(align string) bool {
	a := Alignment(strings.ToLower(align))
	if !a.Valid() {
		return false
	}
	d.CurrentParagraph().Alignment = a
	d.modified = true
	return true
}

// AllText returns the full document text: paragraph texts joined by
// newlines, sections concatenated in order.
func (d *Document) AllText() string {
	var texts []string
	for _, sec := range d.Sections {
		for _, para := range sec.Paragraphs {
			texts = append(texts, para.Text())
		}
	}
	return strings.Join(texts, "\n")
}

// Tables returns every table in the document in section order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, sec := range d.Sections {
		tables = append(tables, sec.Tables...)
	}
	return tables
}

// Clear resets the document to a single empty section and paragraph,
// cursor at the start. The dirty flag is set.
func (d *Document) Clear() {
	sec := &Section{ID: "sec_0"}
	sec.Paragraphs = []*Paragraph{NewParagraph("para_0")}
	d.Sections = []*Section{sec}
	d.curSection = 0
	d.curPara = 0
	d.modified = true
}
