package assemble

import (
	"regexp"
	"strings"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/doctree"
)

// TitleQueue is a FIFO of cleaned short titles for one page.
type TitleQueue []string

// Pop removes the head title. ok is false when the queue is empty.
func (q TitleQueue) Pop() (title string, rest TitleQueue, ok bool) {
	if len(q) == 0 {
		return "", q, false
	}
	return q[0], q[1:], true
}

var numberedItem = regexp.MustCompile(`(?s)^(\d+\.)\s*(.*)`)

// Splice attaches queued titles to numbered body lines, one title per item,
// in order. The first line of the page is never a splice target: it is
// passed through, or dropped when dropFirst is set. Titles left over are
// returned to the caller.
func Splice(lines []string, titles TitleQueue, dropFirst bool) ([]*doctree.DocNode, TitleQueue) {
	if len(lines) == 0 {
		return nil, titles
	}

	blocks := make([]*doctree.DocNode, 0, len(lines))
	if !dropFirst {
		blocks = append(blocks, &doctree.DocNode{Text: lines[0]})
	}

	for _, line := range lines[1:] {
		m := numberedItem.FindStringSubmatch(line)
		if m == nil {
			blocks = append(blocks, &doctree.DocNode{Text: line})
			continue
		}
		number, rest := m[1], strings.TrimSpace(m[2])

		title, remaining, ok := titles.Pop()
		if !ok {
			blocks = append(blocks, &doctree.DocNode{Number: number, Text: line})
			continue
		}
		titles = remaining
		blocks = append(blocks, &doctree.DocNode{
			Title:  title,
			Number: number,
			Body:   rest,
			Text:   number + " " + title + "\n" + rest,
		})
	}
	return blocks, titles
}
