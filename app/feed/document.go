package feed

import (
	"bytes"
	"encoding/xml"
)

// Namespace prefixes declared on the feed root.
const (
	NSAtom       = "atom"
	NSITunes     = "itunes"
	NSGooglePlay = "googleplay"
)

// Declaration order on the root element is fixed; podcast directory crawlers
// treat the namespace URIs as part of the wire contract.
var namespaces = []struct {
	Prefix string
	URI    string
}{
	{NSAtom, "http://www.w3.org/2005/Atom"},
	{NSITunes, "http://www.itunes.com/dtds/podcast-1.0.dtd"},
	{NSGooglePlay, "http://www.google.com/schemas/play-podcasts/1.0"},
}

// Attr is a single attribute on an element, kept in insertion order.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the feed document tree: an optionally prefixed name,
// optional text content, attributes and ordered children.
type Element struct {
	Prefix   string
	Name     string
	Text     string
	Attrs    []Attr
	Children []*Element
}

// Document is an in-memory feed ready for serialization.
type Document struct {
	Root *Element
}

func newElement(prefix, name, text string) *Element {
	return &Element{Prefix: prefix, Name: name, Text: text}
}

// child appends a new element and returns it so siblings and attributes can
// be chained off the result.
func (e *Element) child(prefix, name, text string) *Element {
	c := newElement(prefix, name, text)
	e.Children = append(e.Children, c)
	return c
}

func (e *Element) attr(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

func (e *Element) tag() string {
	if e.Prefix == "" {
		return e.Name
	}
	return e.Prefix + ":" + e.Name
}

// XML renders the document as UTF-8 XML text. Text content and attribute
// values are escaped; elements without text or children self-close.
func (d *Document) XML() []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	writeElement(&buf, d.Root, 0)
	return buf.Bytes()
}

func writeElement(buf *bytes.Buffer, e *Element, indent int) {
	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(e.tag())
	for _, a := range e.Attrs {
		buf.WriteString(" ")
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		xml.EscapeText(buf, []byte(a.Value))
		buf.WriteString(`"`)
	}

	switch {
	case len(e.Children) > 0:
		buf.WriteString(">\n")
		for _, c := range e.Children {
			writeElement(buf, c, indent+2)
		}
		for i := 0; i < indent; i++ {
			buf.WriteByte(' ')
		}
		buf.WriteString("</")
		buf.WriteString(e.tag())
		buf.WriteString(">\n")
	case e.Text != "":
		buf.WriteString(">")
		xml.EscapeText(buf, []byte(e.Text))
		buf.WriteString("</")
		buf.WriteString(e.tag())
		buf.WriteString(">\n")
	default:
		buf.WriteString(" />\n")
	}
}
