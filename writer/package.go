package writer

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/tsawler/hwpx/model"
)

// Namespaces of the package descriptor. The descriptor reuses the OPF
// package vocabulary with Dublin Core metadata, matching what Hangul
// itself emits.
const (
	nsOPF = "http://www.idpf.org/2007/opf/"
	nsDC  = "http://purl.org/dc/elements/1.1/"
)

// Placeholder metadata used when the document carries none.
const (
	defaultTitle   = "Untitled"
	defaultCreator = "hwpx"
)

// now returns the descriptor timestamp. A variable so tests can pin it.
var now = func() string {
	return time.Now().Format(time.RFC3339)
}

type packageXML struct {
	XMLName  xml.Name    `xml:"opf:package"`
	XmlnsOPF string      `xml:"xmlns:opf,attr"`
	XmlnsDC  string      `xml:"xmlns:dc,attr"`
	Version  string      `xml:"version,attr"`
	ID       string      `xml:"unique-identifier,attr"`
	Metadata metadataXML `xml:"opf:metadata"`
	Manifest manifestSet `xml:"opf:manifest"`
	Spine    spineXML    `xml:"opf:spine"`
}

type metadataXML struct {
	Title   string    `xml:"dc:title"`
	Creator string    `xml:"dc:creator"`
	Subject string    `xml:"dc:subject,omitempty"`
	Dates   []dateXML `xml:"dc:date"`
}

type dateXML struct {
	Event string `xml:"event,attr"`
	Value string `xml:",chardata"`
}

type manifestSet struct {
	Items []itemXML `xml:"opf:item"`
}

type itemXML struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
}

type spineXML struct {
	Refs []itemRefXML `xml:"opf:itemref"`
}

type itemRefXML struct {
	IDRef string `xml:"idref,attr"`
}

// buildPackage renders Contents/content.hpf: document metadata plus the
// manifest and spine listing every part. The spine places the header
// first, then the sections in index order.
func buildPackage(doc *model.Document) []byte {
	ts := now()

	pkg := packageXML{
		XmlnsOPF: nsOPF,
		XmlnsDC:  nsDC,
		Version:  "1.0",
		ID:       "",
		Metadata: metadataXML{
			Title:   doc.Metadata.Title,
			Creator: doc.Metadata.Author,
			Subject: doc.Metadata.Subject,
			Dates: []dateXML{
				{Event: "created", Value: ts},
				{Event: "modified", Value: ts},
			},
		},
	}
	if pkg.Metadata.Title == "" {
		pkg.Metadata.Title = defaultTitle
	}
	if pkg.Metadata.Creator == "" {
		pkg.Metadata.Creator = defaultCreator
	}

	pkg.Manifest.Items = append(pkg.Manifest.Items, itemXML{
		ID:        "header",
		Href:      "Contents/header.xml",
		MediaType: "application/xml",
	})
	for _, img := range documentImages(doc) {
		pkg.Manifest.Items = append(pkg.Manifest.Items, itemXML{
			ID:        img.BinaryID,
			Href:      "BinData/" + binDataName(img),
			MediaType: img.MediaType,
		})
	}
	for i := range doc.Sections {
		pkg.Manifest.Items = append(pkg.Manifest.Items, itemXML{
			ID:        fmt.Sprintf("section%d", i),
			Href:      fmt.Sprintf("Contents/section%d.xml", i),
			MediaType: "application/xml",
		})
	}
	pkg.Manifest.Items = append(pkg.Manifest.Items, itemXML{
		ID:        "settings",
		Href:      "settings.xml",
		MediaType: "application/xml",
	})

	pkg.Spine.Refs = append(pkg.Spine.Refs, itemRefXML{IDRef: "header"})
	for i := range doc.Sections {
		pkg.Spine.Refs = append(pkg.Spine.Refs, itemRefXML{IDRef: fmt.Sprintf("section%d", i)})
	}

	return marshalPart(pkg)
}

// marshalPart renders a part with the XML declaration prepended.
// Marshal cannot fail for these closed types; a failure would be a
// programming error.
func marshalPart(v interface{}) []byte {
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("writer: marshaling part: %v", err))
	}
	return append([]byte(xml.Header), data...)
}
