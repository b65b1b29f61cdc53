package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/assemble"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/classify"
	"gopkg.in/yaml.v3"
)

// Profile is a named set of page-geometry rules for one document family.
type Profile struct {
	Name                string     `yaml:"name" json:"name"`
	Header              HeaderZone `yaml:"header" json:"header"`
	ShortTitle          TitleZone  `yaml:"short_title" json:"short_title"`
	ExcludeTitlePattern string     `yaml:"exclude_title_pattern" json:"exclude_title_pattern"`
	DropFirstLine       bool       `yaml:"drop_first_line" json:"drop_first_line"`
}

// HeaderZone is the running-header band.
type HeaderZone struct {
	X        Bounds `yaml:"x" json:"x"`
	Y        Bounds `yaml:"y" json:"y"`
	FontSize string `yaml:"font_size" json:"font_size"`
}

// TitleZone is the pair of margin bands holding short titles.
type TitleZone struct {
	LeftX    Bounds `yaml:"left_x" json:"left_x"`
	RightX   Bounds `yaml:"right_x" json:"right_x"`
	Y        Bounds `yaml:"y" json:"y"`
	FontSize string `yaml:"font_size" json:"font_size"`
}

// Bounds is a closed interval written as a two-element list: [min, max].
type Bounds [2]float64

func (b Bounds) interval() classify.Interval {
	return classify.Interval{Min: b[0], Max: b[1]}
}

func fromInterval(iv classify.Interval) Bounds {
	return Bounds{iv.Min, iv.Max}
}

func profileFrom(name string, zones classify.Config, pattern string) Profile {
	return Profile{
		Name: name,
		Header: HeaderZone{
			X:        fromInterval(zones.HeaderX),
			Y:        fromInterval(zones.HeaderY),
			FontSize: zones.HeaderFontSize,
		},
		ShortTitle: TitleZone{
			LeftX:    fromInterval(zones.TitleLeftX),
			RightX:   fromInterval(zones.TitleRightX),
			Y:        fromInterval(zones.TitleY),
			FontSize: zones.TitleFontSize,
		},
		ExcludeTitlePattern: pattern,
	}
}

var builtinProfiles = map[string]Profile{
	"wide":   profileFrom("wide", classify.Wide(), assemble.DefaultExcludePattern),
	"narrow": profileFrom("narrow", classify.Narrow(), `^\d+\s+of\s+\d+\.?$`),
}

// DefaultProfile is used when none is named.
const DefaultProfile = "wide"

// BuiltinProfile returns a copy of a named built-in profile.
func BuiltinProfile(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	p, ok := builtinProfiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown layout profile: %s", name)
	}
	return p, nil
}

// ProfileNames lists the built-in profiles in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for n := range builtinProfiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadProfile reads a YAML profile. Fields missing from the file keep the
// values of the built-in profile named by base.
func LoadProfile(path, base string) (Profile, error) {
	p, err := BuiltinProfile(base)
	if err != nil {
		return Profile{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Zones converts the profile into classifier bounds.
func (p Profile) Zones() classify.Config {
	return classify.Config{
		HeaderX:        p.Header.X.interval(),
		HeaderY:        p.Header.Y.interval(),
		HeaderFontSize: p.Header.FontSize,
		TitleLeftX:     p.ShortTitle.LeftX.interval(),
		TitleRightX:    p.ShortTitle.RightX.interval(),
		TitleY:         p.ShortTitle.Y.interval(),
		TitleFontSize:  p.ShortTitle.FontSize,
	}
}

// AssembleOptions converts the profile into page assembly options.
func (p Profile) AssembleOptions() assemble.Options {
	return assemble.Options{
		Zones:          p.Zones(),
		ExcludePattern: p.ExcludeTitlePattern,
		DropFirstLine:  p.DropFirstLine,
	}
}

// Validate checks the zones and that the exclusion pattern compiles.
func (p Profile) Validate() error {
	if err := p.Zones().Validate(); err != nil {
		return err
	}
	if _, err := assemble.NewSanitizer(p.ExcludeTitlePattern); err != nil {
		return err
	}
	return nil
}
