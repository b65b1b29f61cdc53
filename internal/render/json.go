package render

import (
	"encoding/json"
	"io"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/doctree"
)

type jsonBlock struct {
	Page   int    `json:"page"`
	Number string `json:"number,omitempty"`
	Title  string `json:"title,omitempty"`
	Body   string `json:"body,omitempty"`
	Text   string `json:"text"`
}

type jsonDocument struct {
	Title  string        `json:"title"`
	Stats  doctree.Stats `json:"stats"`
	Blocks []jsonBlock   `json:"blocks"`
}

// JSON writes the blocks with their page, number and spliced title.
func JSON(w io.Writer, tree *doctree.DocTree) error {
	out := jsonDocument{
		Title:  tree.Title,
		Stats:  tree.Stats,
		Blocks: []jsonBlock{},
	}
	for _, b := range tree.Blocks() {
		out.Blocks = append(out.Blocks, jsonBlock{
			Page:   b.Page,
			Number: b.Number,
			Title:  b.Title,
			Body:   b.Body,
			Text:   b.Text,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
