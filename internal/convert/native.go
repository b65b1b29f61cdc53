package convert

import (
	"fmt"
	"math"
	"strconv"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/layout"
	pdflib "github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// ExtractLayout reads positioned glyphs with ledongthuc/pdf and groups them
// into text lines and boxes the way pdfminer's layout analysis would, closely
// enough for the geometry rules to apply. Font sizes are formatted with three
// decimals to match the tool's output.
func ExtractLayout(path string) (doc *layout.Document, err error) {
	// The reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("read pdf: %v", r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc = &layout.Document{}
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		doc.Pages = append(doc.Pages, layout.Page{
			ID:    strconv.Itoa(i),
			Boxes: groupBoxes(groupLines(page.Content().Text)),
		})
	}
	return doc, nil
}

type glyphLine struct {
	bbox  layout.BBox
	size  float64
	frags []layout.Fragment
	end   float64 // right edge of the last glyph
}

// groupLines joins glyphs that share a baseline and follow each other
// closely. A wide horizontal gap starts a new line so that margin notes on
// the same baseline as body text stay separate.
func groupLines(glyphs []pdflib.Text) []*glyphLine {
	var lines []*glyphLine
	var cur *glyphLine
	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		size := g.FontSize
		if size <= 0 {
			size = 1
		}
		if cur != nil {
			sameBaseline := math.Abs(g.Y-cur.bbox.Y0) <= 0.3*size
			gap := g.X - cur.end
			if !sameBaseline || gap > 2*size || gap < -size {
				lines = append(lines, cur)
				cur = nil
			} else if gap > 0.2*size {
				cur.frags = append(cur.frags, layout.Fragment{Text: " "})
			}
		}
		if cur == nil {
			cur = &glyphLine{
				bbox: layout.BBox{X0: g.X, Y0: g.Y, X1: g.X + g.W, Y1: g.Y + size},
				size: size,
			}
		}
		// Ligature glyphs ("ﬁ") are folded to plain letters.
		cur.frags = append(cur.frags, layout.Fragment{Size: fmt.Sprintf("%.3f", g.FontSize), Text: norm.NFKC.String(g.S)})
		cur.end = g.X + g.W
		cur.bbox.X1 = math.Max(cur.bbox.X1, cur.end)
		cur.bbox.Y1 = math.Max(cur.bbox.Y1, g.Y+size)
	}
	if cur != nil {
		lines = append(lines, cur)
	}
	return lines
}

// groupBoxes merges consecutive lines that overlap horizontally and sit no
// more than one line height apart.
func groupBoxes(lines []*glyphLine) []layout.TextBox {
	var boxes []layout.TextBox
	for _, ln := range lines {
		line := layout.TextLine{Fragments: append(ln.frags, layout.Fragment{Text: "\n"})}
		if n := len(boxes); n > 0 && continuesBox(boxes[n-1].BBox, ln) {
			b := &boxes[n-1]
			b.Lines = append(b.Lines, line)
			b.BBox = union(b.BBox, ln.bbox)
			continue
		}
		boxes = append(boxes, layout.TextBox{BBox: ln.bbox, Lines: []layout.TextLine{line}})
	}
	return boxes
}

func continuesBox(box layout.BBox, ln *glyphLine) bool {
	overlaps := ln.bbox.X0 < box.X1 && ln.bbox.X1 > box.X0
	gap := box.Y0 - ln.bbox.Y1
	return overlaps && gap >= -0.5*ln.size && gap <= ln.size
}

func union(a, b layout.BBox) layout.BBox {
	return layout.BBox{
		X0: math.Min(a.X0, b.X0),
		Y0: math.Min(a.Y0, b.Y0),
		X1: math.Max(a.X1, b.X1),
		Y1: math.Max(a.Y1, b.Y1),
	}
}
