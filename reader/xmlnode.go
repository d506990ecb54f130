package reader

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// xmlNode is a minimal element tree. Names are local names with the
// namespace prefix stripped, which is how HWPX parts are matched: the
// markup mixes hp:, hs:, and unprefixed elements depending on the
// producing application.
type xmlNode struct {
	Name     string
	Attrs    []xml.Attr
	Text     string
	Children []*xmlNode
}

// attr returns the value of the named attribute (local name match), or
// the empty string.
func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// walk visits n and its descendants depth-first. The callback's return
// value controls whether the children of the visited node are entered.
func (n *xmlNode) walk(visit func(*xmlNode) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		c.walk(visit)
	}
}

// parseXML decodes an XML document into an element tree rooted at the
// first start element.
func parseXML(data []byte) (*xmlNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var root *xmlNode
	var stack []*xmlNode

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reader: parsing XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &xmlNode{Name: t.Name.Local, Attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("reader: multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("reader: unbalanced end element %s", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("reader: no root element")
	}
	return root, nil
}

// charsetReader handles the encodings seen in the wild. HWPX is
// nominally UTF-8 but parts exported by older Hangul versions declare
// EUC-KR variants.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return input, nil
	case "euc-kr", "euckr", "cp949", "windows-949", "ks_c_5601-1987", "ksc5601":
		return transform.NewReader(input, korean.EUCKR.NewDecoder()), nil
	}
	return nil, fmt.Errorf("reader: unsupported charset %q", charset)
}
