// Package classify labels text boxes from their page geometry and font size.
//
// The bounds encode the observed page furniture of one family of statutory
// PDFs: a banner along the top is a running header, small type in either side
// margin is a short title. All comparisons use closed intervals, and font
// sizes are matched as exact strings.
package classify

import "fmt"

// Class is the label assigned to a fragment.
type Class int

const (
	Neither Class = iota
	Header
	ShortTitle
)

func (c Class) String() string {
	switch c {
	case Header:
		return "header"
	case ShortTitle:
		return "short_title"
	default:
		return "neither"
	}
}

// Interval is a closed range [Min, Max].
type Interval struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the closed interval.
func (i Interval) Contains(v float64) bool {
	return i.Min <= v && v <= i.Max
}

func (i Interval) validate(name string) error {
	if i.Min > i.Max {
		return fmt.Errorf("%s: min %.3f exceeds max %.3f", name, i.Min, i.Max)
	}
	return nil
}

// Config holds the header and short-title zones.
type Config struct {
	HeaderX        Interval
	HeaderY        Interval
	HeaderFontSize string

	TitleLeftX    Interval
	TitleRightX   Interval
	TitleY        Interval
	TitleFontSize string
}

// Wide is the zone set with the wider header and right-margin bands.
func Wide() Config {
	return Config{
		HeaderX:        Interval{0, 700},
		HeaderY:        Interval{750, 1000},
		HeaderFontSize: "13.470",
		TitleLeftX:     Interval{0, 125},
		TitleRightX:    Interval{475, 700},
		TitleY:         Interval{0, 1000},
		TitleFontSize:  "10.830",
	}
}

// Narrow is the zone set with the narrower header and right-margin bands.
func Narrow() Config {
	c := Wide()
	c.HeaderX = Interval{0, 500}
	c.TitleRightX = Interval{475, 600}
	return c
}

// Validate checks that every interval is well formed and both font sizes are set.
func (c Config) Validate() error {
	checks := []struct {
		name string
		iv   Interval
	}{
		{"header x", c.HeaderX},
		{"header y", c.HeaderY},
		{"short title left x", c.TitleLeftX},
		{"short title right x", c.TitleRightX},
		{"short title y", c.TitleY},
	}
	for _, ch := range checks {
		if err := ch.iv.validate(ch.name); err != nil {
			return err
		}
	}
	if c.HeaderFontSize == "" {
		return fmt.Errorf("header font size is required")
	}
	if c.TitleFontSize == "" {
		return fmt.Errorf("short title font size is required")
	}
	return nil
}

// IsHeader reports whether a fragment of the given size, inside a box whose
// lower-left corner is (x0, y0), belongs to the running header.
func (c Config) IsHeader(fontSize string, x0, y0 float64) bool {
	return c.HeaderX.Contains(x0) && c.HeaderY.Contains(y0) && fontSize == c.HeaderFontSize
}

// IsShortTitle reports whether a fragment sits in a margin band at title size.
func (c Config) IsShortTitle(fontSize string, x0, y0 float64) bool {
	inBand := c.TitleLeftX.Contains(x0) || c.TitleRightX.Contains(x0)
	return inBand && c.TitleY.Contains(y0) && fontSize == c.TitleFontSize
}

// Classify applies IsHeader first, then IsShortTitle.
func (c Config) Classify(fontSize string, x0, y0 float64) Class {
	switch {
	case c.IsHeader(fontSize, x0, y0):
		return Header
	case c.IsShortTitle(fontSize, x0, y0):
		return ShortTitle
	default:
		return Neither
	}
}
