package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinProfile_Default(t *testing.T) {
	p, err := BuiltinProfile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != DefaultProfile {
		t.Errorf("expected profile %q, got %q", DefaultProfile, p.Name)
	}
	if p.Header.FontSize != "13.470" {
		t.Errorf("expected header font size %q, got %q", "13.470", p.Header.FontSize)
	}
	if p.ShortTitle.RightX != (Bounds{475, 700}) {
		t.Errorf("expected right band [475 700], got %v", p.ShortTitle.RightX)
	}
}

func TestBuiltinProfile_Narrow(t *testing.T) {
	p, err := BuiltinProfile("narrow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Header.X != (Bounds{0, 500}) {
		t.Errorf("expected header x [0 500], got %v", p.Header.X)
	}
	if p.ShortTitle.RightX != (Bounds{475, 600}) {
		t.Errorf("expected right band [475 600], got %v", p.ShortTitle.RightX)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("expected narrow profile to validate, got %v", err)
	}
}

func TestBuiltinProfile_Unknown(t *testing.T) {
	if _, err := BuiltinProfile("tabloid"); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestProfileNames_Sorted(t *testing.T) {
	names := ProfileNames()
	if strings.Join(names, ",") != "narrow,wide" {
		t.Errorf("expected [narrow wide], got %v", names)
	}
}

func TestLoadProfile_OverlaysBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gazette.yaml")
	body := `name: gazette
short_title:
  right_x: [450, 620]
  font_size: "9.960"
drop_first_line: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path, "wide")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "gazette" {
		t.Errorf("expected name %q, got %q", "gazette", p.Name)
	}
	if p.ShortTitle.RightX != (Bounds{450, 620}) {
		t.Errorf("expected right band [450 620], got %v", p.ShortTitle.RightX)
	}
	if p.ShortTitle.FontSize != "9.960" {
		t.Errorf("expected font size %q, got %q", "9.960", p.ShortTitle.FontSize)
	}
	// Untouched fields keep the base values.
	if p.ShortTitle.LeftX != (Bounds{0, 125}) {
		t.Errorf("expected left band [0 125], got %v", p.ShortTitle.LeftX)
	}
	if p.Header.FontSize != "13.470" {
		t.Errorf("expected header font size %q, got %q", "13.470", p.Header.FontSize)
	}
	if !p.DropFirstLine {
		t.Error("expected drop_first_line to be set")
	}
	opts := p.AssembleOptions()
	if !opts.DropFirstLine || opts.Zones.TitleFontSize != "9.960" {
		t.Errorf("expected options to carry the profile, got %+v", opts)
	}
}

func TestLoadProfile_EmptyFileIsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadProfile(path, "narrow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "narrow" {
		t.Errorf("expected name %q, got %q", "narrow", p.Name)
	}
}

func TestLoadProfile_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": "colour: blue\n",
		"inverted band": "header:\n  y: [1000, 750]\n",
		"bad pattern":   "exclude_title_pattern: \"([\"\n",
		"missing font":  "header:\n  font_size: \"\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "p.yaml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadProfile(path, "wide"); err == nil {
				t.Errorf("expected error for %s", name)
			}
		})
	}
}

func TestLoadProfile_MissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"), "wide"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
