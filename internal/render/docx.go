package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/doctree"
	"github.com/fumiama/go-docx"
)

// DOCX writes a Word document: a bold heading paragraph for each spliced
// item and one paragraph per line of every other block.
func DOCX(w io.Writer, tree *doctree.DocTree) error {
	doc := docx.New().WithDefaultTheme()

	if tree.Title != "" {
		doc.AddParagraph().AddText(tree.Title).Bold().Size("32")
	}
	for _, b := range tree.Blocks() {
		if b.Spliced() {
			doc.AddParagraph().AddText(b.Number + " " + b.Title).Bold()
			if b.Body != "" {
				doc.AddParagraph().AddText(b.Body)
			}
			continue
		}
		for _, line := range strings.Split(b.Text, "\n") {
			doc.AddParagraph().AddText(line)
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
