package assemble

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultExcludePattern matches running "16 of 2024." citations that leak
// into the margin band.
const DefaultExcludePattern = `^\d+\s+of\s+\d+\.$`

// Sanitizer removes spurious short titles.
type Sanitizer struct {
	exclude *regexp.Regexp
}

// NewSanitizer compiles pattern as a whole-string match against trimmed
// titles. An empty pattern excludes nothing.
func NewSanitizer(pattern string) (*Sanitizer, error) {
	if pattern == "" {
		return &Sanitizer{}, nil
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compile exclude pattern: %w", err)
	}
	return &Sanitizer{exclude: re}, nil
}

// Sanitize drops blank titles and titles matching the exclusion pattern.
// Survivors are returned unchanged and in order.
func (s *Sanitizer) Sanitize(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			continue
		}
		if s.exclude != nil && s.exclude.MatchString(trimmed) {
			continue
		}
		out = append(out, t)
	}
	return out
}
