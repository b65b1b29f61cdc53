// Package assemble turns ordered text boxes into the final block sequence:
// it separates body lines from margin short titles, filters the titles, and
// splices them onto numbered items.
package assemble

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/classify"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/layout"
)

// Collect walks boxes in the given order and partitions their text into
// body lines and raw short-title candidates.
//
// A box is a short title as soon as one of its fragments matches the title
// zone; header fragments are left out of the box text without changing that.
// Boxes whose text is blank are dropped from both outputs.
func Collect(boxes []layout.TextBox, cfg classify.Config) (lines, titles []string) {
	for _, box := range boxes {
		text, short := boxText(box, cfg)
		if short {
			titles = append(titles, splitTitles(strings.ReplaceAll(text, "\n", ""))...)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(strings.ReplaceAll(text, "\n", " ")))
	}
	return lines, titles
}

// boxText concatenates the non-header fragments of a box in document order.
func boxText(box layout.TextBox, cfg classify.Config) (string, bool) {
	var sb strings.Builder
	short := false
	x0, y0 := box.BBox.X0, box.BBox.Y0
	for _, line := range box.Lines {
		for _, frag := range line.Fragments {
			switch cfg.Classify(frag.Size, x0, y0) {
			case classify.Header:
				continue
			case classify.ShortTitle:
				short = true
			}
			sb.WriteString(frag.Text)
		}
	}
	return sb.String(), short
}

// splitTitles splits margin text on periods that run straight into a word
// character. "Short Title.Extent" is two titles; "Sec. 2" is one.
func splitTitles(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '.' || i+1 >= len(s) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(s[i+1:])
		if !isWordRune(next) {
			continue
		}
		if part := strings.TrimSpace(s[start:i]); part != "" {
			out = append(out, part)
		}
		start = i + 1
	}
	if part := strings.TrimSpace(s[start:]); part != "" {
		out = append(out, part)
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
