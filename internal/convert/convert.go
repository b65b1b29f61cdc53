// Package convert produces the layout interchange document for a PDF.
//
// The primary path shells out to pdfminer's pdf2txt.py, exactly as the
// conversion has always been run. When that tool is not installed, an
// in-process extractor can synthesize an equivalent document instead.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/layout"
)

// ErrToolNotFound is wrapped by ConversionError when the layout tool
// cannot be found on PATH.
var ErrToolNotFound = errors.New("layout tool not found")

// ConversionError reports a failed external conversion.
type ConversionError struct {
	Tool   string
	Err    error
	Stderr string
}

func (e *ConversionError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Tool, e.Err, truncate(e.Stderr, 300))
	}
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Converter turns a PDF into a layout document.
type Converter struct {
	Pdf2txtPath    string
	Timeout        time.Duration // zero means no limit
	NativeFallback bool
	Log            *slog.Logger
}

// Result is a converted document and where its interchange XML was written.
type Result struct {
	Doc     *layout.Document
	XMLPath string
	Native  bool
}

// Convert writes <base>.xml into workDir and decodes it. No parsing is
// attempted if the conversion fails, and a partial XML file is removed.
func (c *Converter) Convert(ctx context.Context, pdfPath, workDir string) (*Result, error) {
	log := c.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	xmlPath := filepath.Join(workDir, base+".xml")

	err := c.ToXML(ctx, pdfPath, xmlPath)
	if err == nil {
		log.Info("layout extracted", "tool", c.tool(), "xml", xmlPath)
		doc, err := decodeFile(xmlPath)
		if err != nil {
			return nil, err
		}
		return &Result{Doc: doc, XMLPath: xmlPath}, nil
	}
	if !errors.Is(err, ErrToolNotFound) || !c.NativeFallback {
		return nil, err
	}

	log.Warn("layout tool unavailable, using native extractor", "tool", c.tool())
	doc, nerr := ExtractLayout(pdfPath)
	if nerr != nil {
		return nil, &ConversionError{Tool: "native", Err: nerr}
	}
	if werr := writeXML(xmlPath, doc); werr != nil {
		return nil, werr
	}
	return &Result{Doc: doc, XMLPath: xmlPath, Native: true}, nil
}

// ToXML runs pdf2txt.py -A -t xml -o xmlPath pdfPath to completion.
func (c *Converter) ToXML(ctx context.Context, pdfPath, xmlPath string) error {
	tool := c.tool()
	if _, err := exec.LookPath(tool); err != nil {
		return &ConversionError{Tool: tool, Err: fmt.Errorf("%w: %v", ErrToolNotFound, err)}
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, tool, "-A", "-t", "xml", "-o", xmlPath, pdfPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(xmlPath)
		return &ConversionError{Tool: tool, Err: err, Stderr: strings.TrimSpace(stderr.String())}
	}
	return nil
}

func (c *Converter) tool() string {
	if c.Pdf2txtPath == "" {
		return "pdf2txt.py"
	}
	return c.Pdf2txtPath
}

func decodeFile(path string) (*layout.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout xml: %w", err)
	}
	defer f.Close()
	return layout.Decode(f)
}

func writeXML(path string, doc *layout.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create layout xml: %w", err)
	}
	if err := layout.Encode(f, doc); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
