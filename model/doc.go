// Package model provides the in-memory representation of an HWPX document.
//
// The [Document] type owns an ordered list of sections, each holding
// paragraphs, tables, and images, plus document metadata and a cursor
// marking the current section and paragraph. All editing verbs operate
// relative to the cursor:
//
//	doc := model.NewDocument()
//	doc.InsertText("Hello")
//	doc.InsertParagraph()
//	doc.InsertText("World")
//
// The model performs no file I/O. Reading and writing HWPX archives is
// handled by the reader and writer packages, which populate and consume
// these types. The only external capability the model calls is an
// optional [ImageSizer], injected by the caller, used to probe natural
// pixel dimensions when inserting images.
//
// # Invariants
//
// A document always has at least one section, and every section has at
// least one paragraph. Every constructor and mutating operation
// preserves both invariants, so callers never observe an empty document.
//
// The model is not safe for concurrent mutation; callers must serialize
// access to a Document.
package model
