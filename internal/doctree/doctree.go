package doctree

// DocTree is the root of a converted document.
type DocTree struct {
	Title    string     // Document title (from the source filename)
	Children []*DocNode // One node per page, in page order
	Stats    Stats
}

// DocNode is a page (Children set) or an emitted block (Text set).
type DocNode struct {
	Title    string     // Short title spliced onto a numbered item (empty if none)
	Number   string     // Item number including its period, e.g. "12." (empty for plain lines)
	Body     string     // Item text after the number, set only when Title is set
	Text     string     // The block exactly as it is emitted in the text rendition
	Page     int        // 1-based source page
	Children []*DocNode // Blocks of a page node
}

// Stats summarises what the conversion did with a document.
type Stats struct {
	Pages          int `json:"pages"`
	Blocks         int `json:"blocks"`
	TitlesFound    int `json:"titles_found"`
	TitlesExcluded int `json:"titles_excluded"`
	TitlesSpliced  int `json:"titles_spliced"`
	TitlesDropped  int `json:"titles_dropped"`
}

// Spliced reports whether a short title was attached to this block.
func (n *DocNode) Spliced() bool {
	return n.Title != ""
}

// Blocks returns every emitted block across all pages, in output order.
func (t *DocTree) Blocks() []*DocNode {
	var out []*DocNode
	for _, page := range t.Children {
		out = append(out, page.Children...)
	}
	return out
}
