package writer

import (
	"encoding/xml"

	"github.com/tsawler/hwpx/model"
)

// HWPML namespaces used by section parts.
const (
	nsHS = "http://www.hancom.co.kr/hwpml/2011/section"
	nsHP = "http://www.hancom.co.kr/hwpml/2011/paragraph"
	nsHC = "http://www.hancom.co.kr/hwpml/2011/core"
)

// Table sizing: fixed per-column and per-row sizes in HWPML units.
const (
	colWidth  = 8000
	rowHeight = 1800
)

// secPrXML is the inline page/layout block embedded in the first
// paragraph of the first section: A4 portrait with default margins, in
// HWPML units.
const secPrXML = `<hp:secPr id="" textDirection="HORIZONTAL" spaceColumns="1134" tabStop="8000" outlineShapeIDRef="1" memoShapeIDRef="0" textVerticalWidthHead="0"><hp:pagePr landscape="WIDELY" width="59528" height="84188" gutterType="LEFT_ONLY"><hp:margin header="4252" footer="4252" gutter="0" left="8504" right="8504" top="5668" bottom="4252"/></hp:pagePr></hp:secPr>`

type sectionXML struct {
	XMLName  xml.Name       `xml:"hs:sec"`
	XmlnsHS  string         `xml:"xmlns:hs,attr"`
	XmlnsHP  string         `xml:"xmlns:hp,attr"`
	XmlnsHC  string         `xml:"xmlns:hc,attr"`
	ID       string         `xml:"id,attr"`
	Paras    []paragraphXML `xml:"hp:p"`
	Tables   []tableXML     `xml:"hp:tbl"`
	Pictures []pictureXML   `xml:"hp:pic"`
}

type paragraphXML struct {
	ID          string   `xml:"id,attr"`
	ParaPrIDRef string   `xml:"paraPrIDRef,attr,omitempty"`
	SecPr       string   `xml:",innerxml"`
	Runs        []runXML `xml:"hp:run"`
}

type runXML struct {
	CharPrIDRef string `xml:"charPrIDRef,attr,omitempty"`
	Text        string `xml:"hp:t"`
}

type tableXML struct {
	ID     string       `xml:"id,attr"`
	RowCnt int          `xml:"rowCnt,attr"`
	ColCnt int          `xml:"colCnt,attr"`
	Size   tableSizeXML `xml:"hp:sz"`
	Rows   []rowXML     `xml:"hp:tr"`
}

type tableSizeXML struct {
	Width  int `xml:"width,attr"`
	Height int `xml:"height,attr"`
}

type rowXML struct {
	Cells []cellXML `xml:"hp:tc"`
}

type cellXML struct {
	Paras []paragraphXML `xml:"hp:p"`
}

type pictureXML struct {
	ID       string       `xml:"id,attr"`
	Flip     flipXML      `xml:"hp:flip"`
	Rotation rotationXML  `xml:"hp:rotationInfo"`
	OrigSize imageSizeXML `xml:"hp:orgSz"`
	CurSize  imageSizeXML `xml:"hp:curSz"`
	Img      imageRefXML  `xml:"hc:img"`
}

type flipXML struct {
	Horizontal int `xml:"horizontal,attr"`
	Vertical   int `xml:"vertical,attr"`
}

type rotationXML struct {
	Angle int `xml:"angle,attr"`
}

type imageSizeXML struct {
	Width  int `xml:"width,attr"`
	Height int `xml:"height,attr"`
}

type imageRefXML struct {
	BinaryItemIDRef string `xml:"binaryItemIDRef,attr"`
}

// buildSection renders one section part. Paragraph ids come from ids,
// unique across all sections of the write.
func buildSection(sec *model.Section, index int, ids *idGen) []byte {
	out := sectionXML{
		XmlnsHS: nsHS,
		XmlnsHP: nsHP,
		XmlnsHC: nsHC,
		ID:      sec.ID,
	}

	for pi, para := range sec.Paragraphs {
		p := buildParagraph(para, ids)
		if index == 0 && pi == 0 {
			p.SecPr = secPrXML
		}
		out.Paras = append(out.Paras, p)
	}

	for _, tbl := range sec.Tables {
		out.Tables = append(out.Tables, buildTable(tbl, ids))
	}

	for _, img := range sec.Images {
		out.Pictures = append(out.Pictures, pictureXML{
			ID:       img.ID,
			OrigSize: imageSizeXML{Width: img.OrigWidth, Height: img.OrigHeight},
			CurSize:  imageSizeXML{Width: img.Width, Height: img.Height},
			Img:      imageRefXML{BinaryItemIDRef: img.BinaryID},
		})
	}

	return marshalPart(out)
}

func buildParagraph(para *model.Paragraph, ids *idGen) paragraphXML {
	p := paragraphXML{
		ID:          ids.id(),
		ParaPrIDRef: para.StyleID,
	}
	for _, run := range para.Runs {
		// Empty runs are never serialized.
		if run.Text == "" {
			continue
		}
		p.Runs = append(p.Runs, runXML{
			CharPrIDRef: run.Style.CharStyleID,
			Text:        run.Text,
		})
	}
	return p
}

func buildTable(tbl *model.Table, ids *idGen) tableXML {
	out := tableXML{
		ID:     tbl.ID,
		RowCnt: tbl.Rows,
		ColCnt: tbl.Cols,
		Size: tableSizeXML{
			Width:  colWidth * tbl.Cols,
			Height: rowHeight * tbl.Rows,
		},
	}

	for r := 0; r < tbl.Rows; r++ {
		row := rowXML{}
		for c := 0; c < tbl.Cols; c++ {
			cell := cellXML{}
			paras := tbl.Cells[r][c].Paragraphs
			if len(paras) == 0 {
				// A cell always serializes with at least one paragraph.
				cell.Paras = append(cell.Paras, paragraphXML{ID: ids.id()})
			}
			for _, para := range paras {
				cell.Paras = append(cell.Paras, buildParagraph(para, ids))
			}
			row.Cells = append(row.Cells, cell)
		}
		out.Rows = append(out.Rows, row)
	}

	return out
}
