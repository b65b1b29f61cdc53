package layout

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// FormatError reports a malformed interchange document, pointing at the
// page and 0-based text box that could not be read.
type FormatError struct {
	Page string
	Box  int
	Attr string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("page %s, textbox %d: %s: %v", e.Page, e.Box, e.Attr, e.Err)
	}
	return fmt.Sprintf("page %s, textbox %d: %v", e.Page, e.Box, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ErrMissingAttr is wrapped by FormatError when a required attribute is absent.
var ErrMissingAttr = errors.New("missing attribute")

type xmlPages struct {
	XMLName xml.Name  `xml:"pages"`
	Pages   []xmlPage `xml:"page"`
}

type xmlPage struct {
	ID    string       `xml:"id,attr"`
	BBox  string       `xml:"bbox,attr,omitempty"`
	Boxes []xmlTextBox `xml:"textbox"`
}

type xmlTextBox struct {
	ID    string        `xml:"id,attr,omitempty"`
	BBox  string        `xml:"bbox,attr"`
	Lines []xmlTextLine `xml:"textline"`
}

type xmlTextLine struct {
	BBox  string    `xml:"bbox,attr,omitempty"`
	Texts []xmlText `xml:"text"`
}

type xmlText struct {
	Size string `xml:"size,attr,omitempty"`
	Text string `xml:",chardata"`
}

// The decode side reads the tree generically: with -A the layout tool nests
// analysed textboxes inside <figure> elements, so boxes are collected at any
// depth under a page.
type xmlPagesIn struct {
	XMLName xml.Name    `xml:"pages"`
	Pages   []xmlPageIn `xml:"page"`
}

type xmlPageIn struct {
	ID    string    `xml:"id,attr"`
	Nodes []xmlNode `xml:",any"`
}

type xmlNode struct {
	XMLName xml.Name
	BBox    string        `xml:"bbox,attr"`
	Lines   []xmlTextLine `xml:"textline"`
	Nodes   []xmlNode     `xml:",any"`
}

// collectBoxes appends every textbox under nodes in document order. The
// <layout> summary is skipped: its textgroup entries repeat box bounds
// without any text.
func collectBoxes(out []xmlNode, nodes []xmlNode) []xmlNode {
	for _, n := range nodes {
		switch n.XMLName.Local {
		case "textbox":
			out = append(out, n)
		case "layout":
		default:
			out = collectBoxes(out, n.Nodes)
		}
	}
	return out
}

// Decode reads an interchange document.
func Decode(r io.Reader) (*Document, error) {
	var raw xmlPagesIn
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode layout xml: %w", err)
	}

	doc := &Document{Pages: make([]Page, 0, len(raw.Pages))}
	for pi, rp := range raw.Pages {
		id := rp.ID
		if id == "" {
			id = strconv.Itoa(pi + 1)
		}
		boxes := collectBoxes(nil, rp.Nodes)
		page := Page{ID: id, Boxes: make([]TextBox, 0, len(boxes))}
		for bi, rb := range boxes {
			if rb.BBox == "" {
				return nil, &FormatError{Page: id, Box: bi, Attr: "bbox", Err: ErrMissingAttr}
			}
			bbox, err := ParseBBox(rb.BBox)
			if err != nil {
				return nil, &FormatError{Page: id, Box: bi, Attr: "bbox", Err: err}
			}
			box := TextBox{BBox: bbox, Lines: make([]TextLine, 0, len(rb.Lines))}
			for _, rl := range rb.Lines {
				line := TextLine{Fragments: make([]Fragment, 0, len(rl.Texts))}
				for _, rt := range rl.Texts {
					line.Fragments = append(line.Fragments, Fragment{Size: rt.Size, Text: rt.Text})
				}
				box.Lines = append(box.Lines, line)
			}
			page.Boxes = append(page.Boxes, box)
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// Encode writes doc in the interchange format accepted by Decode.
func Encode(w io.Writer, doc *Document) error {
	raw := xmlPages{Pages: make([]xmlPage, 0, len(doc.Pages))}
	for _, p := range doc.Pages {
		rp := xmlPage{ID: p.ID}
		for _, b := range p.Boxes {
			rb := xmlTextBox{BBox: b.BBox.String()}
			for _, l := range b.Lines {
				var rl xmlTextLine
				for _, f := range l.Fragments {
					rl.Texts = append(rl.Texts, xmlText{Size: f.Size, Text: f.Text})
				}
				rb.Lines = append(rb.Lines, rl)
			}
			rp.Boxes = append(rp.Boxes, rb)
		}
		raw.Pages = append(raw.Pages, rp)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("encode layout xml: %w", err)
	}
	return enc.Close()
}
