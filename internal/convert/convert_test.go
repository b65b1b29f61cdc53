package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-pdf2txt")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func touchPDF(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "act.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvert_ToolNotFound(t *testing.T) {
	dir := t.TempDir()
	c := &Converter{Pdf2txtPath: "legisconv-no-such-tool", NativeFallback: false}
	_, err := c.Convert(context.Background(), touchPDF(t, dir), dir)
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
	var ce *ConversionError
	if !errors.As(err, &ce) || ce.Tool != "legisconv-no-such-tool" {
		t.Errorf("expected ConversionError naming the tool, got %v", err)
	}
}

func TestConvert_NativeFallbackOnBadPDF(t *testing.T) {
	dir := t.TempDir()
	c := &Converter{Pdf2txtPath: "legisconv-no-such-tool", NativeFallback: true}
	_, err := c.Convert(context.Background(), touchPDF(t, dir), dir)
	var ce *ConversionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConversionError, got %v", err)
	}
	if ce.Tool != "native" {
		t.Errorf("expected native extractor failure, got tool %q", ce.Tool)
	}
}

func TestConvert_RunsTool(t *testing.T) {
	tool := writeScript(t, `cat > "$5" <<'XML'
<?xml version="1.0" encoding="utf-8" ?>
<pages><page id="1"><textbox id="0" bbox="150.000,700.000,400.000,712.000"><textline><text size="12.000">Preamble</text></textline></textbox></page></pages>
XML
`)
	dir := t.TempDir()
	c := &Converter{Pdf2txtPath: tool}
	res, err := c.Convert(context.Background(), touchPDF(t, dir), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Native {
		t.Error("expected tool output, not native")
	}
	if res.XMLPath != filepath.Join(dir, "act.xml") {
		t.Errorf("expected xml next to output, got %q", res.XMLPath)
	}
	if len(res.Doc.Pages) != 1 || res.Doc.Pages[0].Boxes[0].Lines[0].Fragments[0].Text != "Preamble" {
		t.Errorf("unexpected document %+v", res.Doc)
	}
}

func TestConvert_ToolFailureIsFatal(t *testing.T) {
	tool := writeScript(t, `echo "partial" > "$5"
echo "PDFSyntaxError: No /Root object" >&2
exit 1
`)
	dir := t.TempDir()
	c := &Converter{Pdf2txtPath: tool, NativeFallback: true}
	_, err := c.Convert(context.Background(), touchPDF(t, dir), dir)
	var ce *ConversionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConversionError, got %v", err)
	}
	if errors.Is(err, ErrToolNotFound) {
		t.Error("expected a tool failure, not a missing tool")
	}
	if !strings.Contains(ce.Stderr, "No /Root object") {
		t.Errorf("expected stderr to be captured, got %q", ce.Stderr)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "act.xml")); !os.IsNotExist(statErr) {
		t.Error("expected partial xml to be removed")
	}
}

func TestConversionError_Message(t *testing.T) {
	e := &ConversionError{Tool: "pdf2txt.py", Err: errors.New("exit status 1"), Stderr: strings.Repeat("x", 400)}
	msg := e.Error()
	if !strings.HasPrefix(msg, "pdf2txt.py: exit status 1: ") {
		t.Errorf("unexpected message %q", msg)
	}
	if !strings.HasSuffix(msg, "...") {
		t.Errorf("expected long stderr to be truncated, got %d bytes", len(msg))
	}
}
