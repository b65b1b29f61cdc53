package assemble

import (
	"reflect"
	"testing"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/classify"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/layout"
)

func frag(size, text string) layout.Fragment {
	return layout.Fragment{Size: size, Text: text}
}

func textBox(x0, y0 float64, lines ...[]layout.Fragment) layout.TextBox {
	b := layout.TextBox{BBox: layout.BBox{X0: x0, Y0: y0, X1: x0 + 100, Y1: y0 + 12}}
	for _, l := range lines {
		b.Lines = append(b.Lines, layout.TextLine{Fragments: l})
	}
	return b
}

func TestCollect_HeaderDropped(t *testing.T) {
	boxes := []layout.TextBox{
		textBox(50, 900, []layout.Fragment{frag("13.470", "PART I")}),
	}
	lines, titles := Collect(boxes, classify.Wide())
	if len(lines) != 0 || len(titles) != 0 {
		t.Errorf("expected header box to be dropped, got lines=%q titles=%q", lines, titles)
	}
}

func TestCollect_ShortTitleSplit(t *testing.T) {
	boxes := []layout.TextBox{
		textBox(500, 600, []layout.Fragment{frag("10.830", "Short Title.Extent of Application")}),
	}
	lines, titles := Collect(boxes, classify.Wide())
	if len(lines) != 0 {
		t.Errorf("expected no body lines, got %q", lines)
	}
	want := []string{"Short Title", "Extent of Application"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("expected %q, got %q", want, titles)
	}
}

func TestCollect_ShortTitleAcrossLines(t *testing.T) {
	boxes := []layout.TextBox{
		textBox(20, 400,
			[]layout.Fragment{frag("10.830", "Power to make"), frag("", "\n")},
			[]layout.Fragment{frag("10.830", " rules.")},
		),
	}
	_, titles := Collect(boxes, classify.Wide())
	want := []string{"Power to make rules."}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("expected %q, got %q", want, titles)
	}
}

func TestCollect_BodyLines(t *testing.T) {
	boxes := []layout.TextBox{
		textBox(150, 700,
			[]layout.Fragment{frag("12.000", "1. This Act may be"), frag("", "\n")},
			[]layout.Fragment{frag("12.000", "called the Boilers Act."), frag("", "\n")},
		),
		textBox(150, 650, []layout.Fragment{frag("12.000", "   ")}),
		textBox(150, 600, []layout.Fragment{frag("12.000", "2. Next")}),
	}
	lines, titles := Collect(boxes, classify.Wide())
	want := []string{"1. This Act may be called the Boilers Act.", "2. Next"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %q, got %q", want, lines)
	}
	if len(titles) != 0 {
		t.Errorf("expected no titles, got %q", titles)
	}
}

func TestCollect_HeaderFragmentInsideTitleBox(t *testing.T) {
	// Header fragments are skipped without changing a short-title box.
	boxes := []layout.TextBox{
		textBox(50, 800, []layout.Fragment{
			frag("13.470", "GAZETTE"),
			frag("10.830", "Definitions."),
		}),
	}
	lines, titles := Collect(boxes, classify.Wide())
	if len(lines) != 0 {
		t.Errorf("expected no body lines, got %q", lines)
	}
	if !reflect.DeepEqual(titles, []string{"Definitions."}) {
		t.Errorf("expected [Definitions.], got %q", titles)
	}
}

func TestCollect_MissingSizeFallsThroughToBody(t *testing.T) {
	boxes := []layout.TextBox{
		textBox(50, 400, []layout.Fragment{frag("", "loose text")}),
	}
	lines, titles := Collect(boxes, classify.Wide())
	if !reflect.DeepEqual(lines, []string{"loose text"}) {
		t.Errorf("expected body line, got %q", lines)
	}
	if len(titles) != 0 {
		t.Errorf("expected no titles, got %q", titles)
	}
}

func TestSplitTitles(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Short Title.Extent", []string{"Short Title", "Extent"}},
		{"Sec. 2", []string{"Sec. 2"}},
		{"Definitions.", []string{"Definitions."}},
		{"A.B.C", []string{"A", "B", "C"}},
		{"Repeal.1", []string{"Repeal", "1"}},
		{"   ", nil},
		{"", nil},
	}
	for _, tc := range cases {
		got := splitTitles(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitTitles(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
