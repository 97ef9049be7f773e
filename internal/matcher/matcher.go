// Package matcher wraps a compiled regular expression with the
// first-match substitution used for renaming.
package matcher

import (
	"regexp"

	"github.com/mydehq/r3name/internal/types"
)

// Pattern is an immutable compiled rename pattern
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// Compile parses a regular expression into a Pattern.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, types.ErrInvalidPattern{Pattern: expr, Err: err}
	}
	return &Pattern{source: expr, re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source text of the pattern
func (p *Pattern) String() string {
	return p.source
}

// Match reports whether the pattern matches anywhere in s.
func (p *Pattern) Match(s string) bool {
	return p.re.MatchString(s)
}

// ReplaceFirst replaces the leftmost match in s with template, expanding
// $1, ${1}, $name and ${name} against that match's groups ($$ is a literal $).
// If there is no match, s is returned unchanged.
func (p *Pattern) ReplaceFirst(s, template string) string {
	loc := p.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}

	dst := make([]byte, 0, len(s)+len(template))
	dst = append(dst, s[:loc[0]]...)
	dst = p.re.ExpandString(dst, template, s, loc)
	dst = append(dst, s[loc[1]:]...)
	return string(dst)
}
