package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/convert"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/layout"
)

// PDFParser handles PDF files by running the layout conversion step.
type PDFParser struct {
	Converter *convert.Converter
}

func (p *PDFParser) Parse(ctx context.Context, r io.Reader, filename string) (*layout.Document, error) {
	if p.Converter == nil {
		return nil, fmt.Errorf("pdf parser: no converter configured")
	}

	// The layout tool reads from a path, so stage the upload in a temp dir.
	dir, err := os.MkdirTemp("", "legisconv-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pdfPath := filepath.Join(dir, filepath.Base(filename))
	tmp, err := os.Create(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	res, err := p.Converter.Convert(ctx, pdfPath, dir)
	if err != nil {
		return nil, err
	}
	return res.Doc, nil
}
