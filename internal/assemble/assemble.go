package assemble

import (
	"fmt"
	"log/slog"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/classify"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/doctree"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/layout"
)

// Options configures an Assembler.
type Options struct {
	Zones          classify.Config
	ExcludePattern string
	DropFirstLine  bool
}

// Assembler runs order, collect, sanitize and splice over each page.
type Assembler struct {
	zones     classify.Config
	sanitizer *Sanitizer
	dropFirst bool
	log       *slog.Logger
}

// New validates opts and builds an Assembler. A nil logger discards output.
func New(opts Options, log *slog.Logger) (*Assembler, error) {
	if err := opts.Zones.Validate(); err != nil {
		return nil, fmt.Errorf("zones: %w", err)
	}
	s, err := NewSanitizer(opts.ExcludePattern)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Assembler{
		zones:     opts.Zones,
		sanitizer: s,
		dropFirst: opts.DropFirstLine,
		log:       log,
	}, nil
}

// Page assembles a single page. Nothing carries over between pages: each
// call starts with its own line list and title queue.
func (a *Assembler) Page(page layout.Page, pageNum int) (*doctree.DocNode, doctree.Stats) {
	ordered := layout.Order(page.Boxes)
	lines, raw := Collect(ordered, a.zones)
	clean := a.sanitizer.Sanitize(raw)
	blocks, leftover := Splice(lines, TitleQueue(clean), a.dropFirst)

	if len(leftover) > 0 {
		a.log.Debug("dropping unconsumed short titles", "page", page.ID, "count", len(leftover))
	}

	node := &doctree.DocNode{
		Title:    "Page " + page.ID,
		Page:     pageNum,
		Children: blocks,
	}
	for _, b := range blocks {
		b.Page = pageNum
	}

	stats := doctree.Stats{
		Pages:          1,
		Blocks:         len(blocks),
		TitlesFound:    len(raw),
		TitlesExcluded: len(raw) - len(clean),
		TitlesSpliced:  len(clean) - len(leftover),
		TitlesDropped:  len(leftover),
	}
	return node, stats
}

// Document assembles every page in order.
func (a *Assembler) Document(doc *layout.Document, title string) *doctree.DocTree {
	tree := &doctree.DocTree{Title: title}
	for i, page := range doc.Pages {
		node, st := a.Page(page, i+1)
		tree.Children = append(tree.Children, node)
		tree.Stats.Pages += st.Pages
		tree.Stats.Blocks += st.Blocks
		tree.Stats.TitlesFound += st.TitlesFound
		tree.Stats.TitlesExcluded += st.TitlesExcluded
		tree.Stats.TitlesSpliced += st.TitlesSpliced
		tree.Stats.TitlesDropped += st.TitlesDropped
	}
	return tree
}
