package classify

import "testing"

func TestClassify_Wide(t *testing.T) {
	cfg := Wide()
	cases := []struct {
		name string
		size string
		x0   float64
		y0   float64
		want Class
	}{
		{"running header", "13.470", 100, 800, Header},
		{"header band edge", "13.470", 700, 750, Header},
		{"header size below band", "13.470", 100, 749.9, Neither},
		{"left margin title", "10.830", 50, 400, ShortTitle},
		{"left band edge", "10.830", 125, 0, ShortTitle},
		{"right margin title", "10.830", 500, 400, ShortTitle},
		{"right band far edge", "10.830", 700, 1000, ShortTitle},
		{"title size in body column", "10.830", 300, 400, Neither},
		{"body size in margin", "12.000", 50, 400, Neither},
		{"size string must match exactly", "10.83", 50, 400, Neither},
		{"missing size", "", 50, 400, Neither},
		{"title size in header band", "10.830", 50, 900, ShortTitle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cfg.Classify(tc.size, tc.x0, tc.y0)
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestClassify_HeaderWinsOverTitle(t *testing.T) {
	cfg := Wide()
	cfg.TitleFontSize = cfg.HeaderFontSize
	if got := cfg.Classify("13.470", 50, 800); got != Header {
		t.Errorf("expected header, got %s", got)
	}
}

func TestClassify_Narrow(t *testing.T) {
	cfg := Narrow()
	if got := cfg.Classify("13.470", 600, 800); got != Neither {
		t.Errorf("expected header x band to stop at 500, got %s", got)
	}
	if got := cfg.Classify("10.830", 650, 400); got != Neither {
		t.Errorf("expected right band to stop at 600, got %s", got)
	}
	if got := cfg.Classify("10.830", 590, 400); got != ShortTitle {
		t.Errorf("expected short title, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Wide().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := Wide()
	bad.TitleY = Interval{Min: 10, Max: 5}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for inverted interval")
	}

	bad = Wide()
	bad.TitleFontSize = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for missing title font size")
	}
}

func TestClassString(t *testing.T) {
	if Header.String() != "header" || ShortTitle.String() != "short_title" || Neither.String() != "neither" {
		t.Errorf("unexpected class names: %s %s %s", Header, ShortTitle, Neither)
	}
}
