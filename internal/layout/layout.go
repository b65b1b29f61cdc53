package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Document is the interchange tree produced by the layout extraction step.
type Document struct {
	Pages []Page
}

// Page is a single rendered page and its text boxes in source order.
type Page struct {
	ID    string
	Boxes []TextBox
}

// TextBox is the unit of classification: one bounding box, one or more lines.
type TextBox struct {
	BBox  BBox
	Lines []TextLine
}

// TextLine groups fragments that share a baseline inside a box.
type TextLine struct {
	Fragments []Fragment
}

// Fragment is the smallest positioned unit of text.
//
// Size is kept exactly as the layout tool formatted it ("10.830"); it is
// compared byte-for-byte and never parsed. An empty Size means the attribute
// was absent, which the tool emits for synthetic spaces and line breaks.
type Fragment struct {
	Size string
	Text string
}

// BBox holds left, bottom, right, top in a bottom-left origin space.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// ParseBBox parses the "x0,y0,x1,y1" attribute form.
func ParseBBox(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, fmt.Errorf("bbox %q: expected 4 comma-separated values, got %d", s, len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BBox{}, fmt.Errorf("bbox %q: %w", s, err)
		}
		v[i] = f
	}
	return BBox{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}, nil
}

// String formats the box the way the layout tool writes it.
func (b BBox) String() string {
	return fmt.Sprintf("%.3f,%.3f,%.3f,%.3f", b.X0, b.Y0, b.X1, b.Y1)
}
