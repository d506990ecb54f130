package model

import "strings"

// Alignment is a paragraph alignment value as stored in HWPX markup.
type Alignment string

// Paragraph alignments recognized by the format.
const (
	AlignLeft       Alignment = "left"
	AlignCenter     Alignment = "center"
	AlignRight      Alignment = "right"
	AlignJustify    Alignment = "justify"
	AlignDistribute Alignment = "distribute"
)

// Valid reports whether a is one of the recognized alignment values.
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify, AlignDistribute:
		return true
	}
	return false
}

// RunStyle holds the character-level formatting of a text run.
// Zero values mean "inherit" and are omitted from generated markup.
type RunStyle struct {
	CharStyleID string // charPrIDRef attribute
	Bold        bool
	Italic      bool
	FontName    string
	FontSize    int // points
}

// IsZero reports whether no styling is set.
func (s RunStyle) IsZero() bool {
	return s == RunStyle{}
}

// Run is a maximal span of text sharing one style within a paragraph.
// Runs with empty text are never serialized.
type Run struct {
	Text  string
	Style RunStyle
}

// Paragraph holds an ordered sequence of text runs.
type Paragraph struct {
	ID        string
	Runs      []Run
	StyleID   string // paraPrIDRef attribute
	Alignment Alignment
}

// NewParagraph creates an empty left-aligned paragraph.
func NewParagraph(id string) *Paragraph {
	return &Paragraph{ID: id, Alignment: AlignLeft}
}

// Text returns the plain text of the paragraph: the concatenation of
// its run texts in order.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// AddRun appends a run. Empty text is kept in memory but skipped by the
// writer.
func (p *Paragraph) AddRun(r Run) {
	p.Runs = append(p.Runs, r)
}

// Section is a top-level content subdivision of a document, backed by
// one XML part in the archive. A section always holds at least one
// paragraph.
type Section struct {
	ID         string
	Paragraphs []*Paragraph
	Tables     []*Table
	Images     []*Image
}

// NewSection creates a section containing a single empty paragraph.
func NewSection(id string) *Section {
	return &Section{
		ID:         id,
		Paragraphs: []*Paragraph{NewParagraph(id + "_para_0")},
	}
}
