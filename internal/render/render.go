// Package render writes a converted document tree in one of several formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/doctree"
)

// Format names an output rendition.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatDOCX     Format = "docx"
	FormatJSON     Format = "json"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "docx":
		return FormatDOCX, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatDOCX:
		return ".docx"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Write renders tree to w.
func Write(w io.Writer, tree *doctree.DocTree, f Format) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(tree))
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(tree))
		return err
	case FormatHTML:
		return HTML(w, tree)
	case FormatDOCX:
		return DOCX(w, tree)
	case FormatJSON:
		return JSON(w, tree)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}

// Text is the canonical rendition: every block followed by exactly one newline.
func Text(tree *doctree.DocTree) string {
	var sb strings.Builder
	for _, b := range tree.Blocks() {
		sb.WriteString(b.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}
