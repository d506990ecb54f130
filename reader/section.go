package reader

import (
	"fmt"

	"github.com/tsawler/hwpx/model"
)

// parseSection parses one section part into a model section. A parse
// error yields an empty section rather than failing the read; the
// caller still gets the sections that did parse. Every returned section
// holds at least one paragraph.
func parseSection(data []byte, id string) *model.Section {
	sec := &model.Section{ID: id}

	root, err := parseXML(data)
	if err == nil {
		paraCount := 0
		tableCount := 0
		root.walk(func(n *xmlNode) bool {
			switch n.Name {
			case "p":
				sec.Paragraphs = append(sec.Paragraphs, parseParagraph(n, paraCount))
				paraCount++
				// Runs were consumed by parseParagraph; do not revisit.
				return false
			case "tbl":
				if tbl := parseTable(n, tableCount); tbl != nil {
					sec.Tables = append(sec.Tables, tbl)
					tableCount++
				}
				// Cell paragraphs belong to the table, not the section.
				return false
			}
			return true
		})
	}

	if len(sec.Paragraphs) == 0 {
		sec.Paragraphs = append(sec.Paragraphs, model.NewParagraph(id+"_para_0"))
	}
	return sec
}

// parseParagraph converts a p element. Text may appear inside run
// elements or as bare t elements directly under the paragraph; both
// become runs, the latter unstyled.
func parseParagraph(n *xmlNode, index int) *model.Paragraph {
	id := n.attr("id")
	if id == "" {
		id = fmt.Sprintf("para_%d", index)
	}
	para := model.NewParagraph(id)
	para.StyleID = n.attr("paraPrIDRef")

	n.walk(func(c *xmlNode) bool {
		switch c.Name {
		case "run":
			if run, ok := parseRun(c); ok {
				para.AddRun(run)
			}
			return false
		case "t":
			if c.Text != "" {
				para.AddRun(model.Run{Text: c.Text})
			}
			return false
		}
		return true
	})

	return para
}

// parseRun converts a run element, concatenating all contained t text
// nodes. Runs without text are dropped.
func parseRun(n *xmlNode) (model.Run, bool) {
	var text string
	n.walk(func(c *xmlNode) bool {
		if c.Name == "t" {
			text += c.Text
		}
		return true
	})
	if text == "" {
		return model.Run{}, false
	}
	return model.Run{
		Text:  text,
		Style: model.RunStyle{CharStyleID: n.attr("charPrIDRef")},
	}, true
}

// parseTable converts a tbl element. The row count is the number of tr
// descendants; the column count is the widest row. Degenerate tables
// with no rows or columns are discarded.
func parseTable(n *xmlNode, index int) *model.Table {
	var rows []*xmlNode
	n.walk(func(c *xmlNode) bool {
		if c.Name == "tr" {
			rows = append(rows, c)
			return false
		}
		return true
	})

	cols := 0
	for _, tr := range rows {
		if c := len(rowCells(tr)); c > cols {
			cols = c
		}
	}
	if len(rows) == 0 || cols == 0 {
		return nil
	}

	tbl := model.NewTable(fmt.Sprintf("table_%d", index), len(rows), cols)
	for r, tr := range rows {
		for c, tc := range rowCells(tr) {
			if c >= cols {
				break
			}
			cell := tbl.Cell(r, c)
			tc.walk(func(p *xmlNode) bool {
				if p.Name == "p" {
					cell.Paragraphs = append(cell.Paragraphs, parseParagraph(p, len(cell.Paragraphs)))
					return false
				}
				return true
			})
		}
	}
	return tbl
}

// rowCells returns the tc descendants of a tr element.
func rowCells(tr *xmlNode) []*xmlNode {
	var cells []*xmlNode
	tr.walk(func(c *xmlNode) bool {
		if c.Name == "tc" {
			cells = append(cells, c)
			return false
		}
		return true
	})
	return cells
}
