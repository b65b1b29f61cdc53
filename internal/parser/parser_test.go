package parser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/convert"
)

func TestForFile(t *testing.T) {
	conv := &convert.Converter{}
	p, err := ForFile("Act.PDF", conv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pp, ok := p.(*PDFParser); !ok || pp.Converter != conv {
		t.Errorf("expected PDFParser with converter, got %T", p)
	}

	p, err = ForFile("act.xml", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*XMLParser); !ok {
		t.Errorf("expected XMLParser, got %T", p)
	}

	if _, err := ForFile("act.docx", nil); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	cases := map[string]bool{
		"a.pdf":  true,
		"a.XML":  true,
		"a.txt":  false,
		"noext":  false,
		"a.pdfx": false,
	}
	for name, want := range cases {
		if got := IsSupportedExtension(name); got != want {
			t.Errorf("IsSupportedExtension(%q): expected %v, got %v", name, want, got)
		}
	}
}

func TestTitleFromFilename(t *testing.T) {
	if got := TitleFromFilename("/tmp/uploads/boilers_act.pdf"); got != "boilers_act" {
		t.Errorf("expected %q, got %q", "boilers_act", got)
	}
	if got := TitleFromFilename("README"); got != "README" {
		t.Errorf("expected %q, got %q", "README", got)
	}
}

func TestXMLParser(t *testing.T) {
	in := `<pages><page id="4"><textbox bbox="1,2,3,4"><textline><text size="12.000">x</text></textline></textbox></page></pages>`
	doc, err := (&XMLParser{}).Parse(context.Background(), strings.NewReader(in), "act.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 || doc.Pages[0].ID != "4" {
		t.Errorf("unexpected document %+v", doc)
	}
}

func TestPDFParser_NoConverter(t *testing.T) {
	if _, err := (&PDFParser{}).Parse(context.Background(), strings.NewReader("%PDF"), "a.pdf"); err == nil {
		t.Error("expected error without a converter")
	}
}

func TestPDFParser_MissingTool(t *testing.T) {
	p := &PDFParser{Converter: &convert.Converter{Pdf2txtPath: "legisconv-no-such-tool"}}
	_, err := p.Parse(context.Background(), strings.NewReader("%PDF-1.4\n"), "../act.pdf")
	if !errors.Is(err, convert.ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}
