package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/doctree"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// Markdown renders spliced items as bold "N. Title" headings followed by
// their body; every other block becomes its own paragraph.
func Markdown(tree *doctree.DocTree) string {
	var sb strings.Builder
	if tree.Title != "" {
		sb.WriteString("# " + escapeMarkdown(tree.Title) + "\n\n")
	}
	for _, b := range tree.Blocks() {
		if b.Spliced() {
			// Keep the number out of list syntax.
			num := strings.TrimSuffix(b.Number, ".") + `\.`
			fmt.Fprintf(&sb, "**%s %s**\n\n", num, escapeMarkdown(b.Title))
			if b.Body != "" {
				sb.WriteString(escapeMarkdown(b.Body) + "\n\n")
			}
			continue
		}
		sb.WriteString(escapeMarkdown(b.Text) + "\n\n")
	}
	return sb.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"<", "&lt;",
)

func escapeMarkdown(s string) string {
	lines := strings.Split(markdownEscaper.Replace(s), "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(line)
	}
	return strings.Join(lines, "\n")
}

// escapeLineStart keeps a line from opening a list or blockquote: "12.",
// "1)", "- ", "+ " and "> " are all common at the start of statutory text.
func escapeLineStart(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]
	if trimmed == "" {
		return line
	}
	switch trimmed[0] {
	case '-', '+', '>':
		return indent + `\` + trimmed
	}
	n := 0
	for n < len(trimmed) && trimmed[n] >= '0' && trimmed[n] <= '9' {
		n++
	}
	if n > 0 && n < len(trimmed) && (trimmed[n] == '.' || trimmed[n] == ')') {
		return indent + trimmed[:n] + `\` + trimmed[n:]
	}
	return line
}

// HTML renders the markdown rendition through goldmark inside a minimal page.
func HTML(w io.Writer, tree *doctree.DocTree) error {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(tree)), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := fmt.Fprintf(w,
		"<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(tree.Title), body.String())
	return err
}
