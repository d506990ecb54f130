package model

import (
	"fmt"
	"strings"
)

// Cell is a single table cell holding its own paragraphs. Row and
// column spans are carried for fidelity but always 1; span editing is
// not supported.
type Cell struct {
	Row        int
	Col        int
	Paragraphs []*Paragraph
	RowSpan    int
	ColSpan    int
}

// Text returns the cell's plain text, paragraphs joined by newlines.
func (c *Cell) Text() string {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		parts = append(parts, p.Text())
	}
	return strings.Join(parts, "\n")
}

// Table is a fixed rows×cols grid of cells. The dimensions are set at
// creation and never change.
type Table struct {
	ID    string
	Rows  int
	Cols  int
	Cells [][]*Cell
}

// NewTable creates a table with every cell pre-populated and empty.
// Dimension validation is the caller's responsibility; see the format
// package.
func NewTable(id string, rows, cols int) *Table {
	t := &Table{ID: id, Rows: rows, Cols: cols}
	t.Cells = make([][]*Cell, rows)
	for r := 0; r < rows; r++ {
		t.Cells[r] = make([]*Cell, cols)
		for c := 0; c < cols; c++ {
			t.Cells[r][c] = &Cell{Row: r, Col: c, RowSpan: 1, ColSpan: 1}
		}
	}
	return t
}

// Cell returns the cell at (row, col), or nil if out of range.
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= t.Rows || col < 0 || col >= t.Cols {
		return nil
	}
	return t.Cells[row][col]
}

// SetCellText replaces the text of the cell at (row, col). It reports
// whether the cell exists.
func (t *Table) SetCellText(row, col int, text string) bool {
	cell := t.Cell(row, col)
	if cell == nil {
		return false
	}
	if len(cell.Paragraphs) == 0 {
		cell.Paragraphs = append(cell.Paragraphs, NewParagraph(fmt.Sprintf("cell_%d_%d_p0", row, col)))
	}
	cell.Paragraphs[0].Runs = []Run{{Text: text}}
	return true
}
