package parser

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/convert"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/layout"
)

// Parser reads a source document into the layout interchange tree.
type Parser interface {
	Parse(ctx context.Context, r io.Reader, filename string) (*layout.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf": true,
	".xml": true,
}

// ForFile returns the appropriate parser for a filename. PDFs go through
// conv; XML files are taken to be already-extracted interchange documents.
func ForFile(filename string, conv *convert.Converter) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFParser{Converter: conv}, nil
	case ".xml":
		return &XMLParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// TitleFromFilename strips directory and extension.
func TitleFromFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// XMLParser decodes an interchange document directly.
type XMLParser struct{}

func (p *XMLParser) Parse(_ context.Context, r io.Reader, _ string) (*layout.Document, error) {
	return layout.Decode(r)
}
