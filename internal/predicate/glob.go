package predicate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"
)

// ErrInvalidPattern is returned when a name pattern can never match a base name.
var ErrInvalidPattern = errors.New("invalid pattern")

// Matcher matches base names against a compiled name pattern.
type Matcher struct {
	pattern       string
	caseSensitive bool
	g             glob.Glob

	// segments holds the pattern split on '*' when it holds bytes the glob
	// compiler cannot read: invalid UTF-8 or a literal U+FFFD.
	segments []string
}

// Compile compiles a name pattern. Only '*' is special: it matches any run of
// zero or more characters. Every other character, '?' and '[' included, is
// matched literally. The match is anchored to the whole name. Bytes that are
// not valid UTF-8 match only themselves.
func Compile(pattern string, caseSensitive bool) (*Matcher, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	if strings.ContainsRune(pattern, '/') {
		return nil, fmt.Errorf("%w: %q contains a path separator and can never match a base name", ErrInvalidPattern, pattern)
	}

	if !caseSensitive {
		pattern = fold(pattern)
	}

	if !utf8.ValidString(pattern) || strings.ContainsRune(pattern, utf8.RuneError) {
		return &Matcher{
			pattern:       pattern,
			caseSensitive: caseSensitive,
			segments:      strings.Split(pattern, "*"),
		}, nil
	}

	// Escape everything, then give '*' its meaning back
	quoted := glob.QuoteMeta(pattern)
	quoted = strings.ReplaceAll(quoted, `\*`, "*")

	g, err := glob.Compile(quoted)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}

	return &Matcher{
		pattern:       pattern,
		caseSensitive: caseSensitive,
		g:             g,
	}, nil
}

// Match reports whether name matches the pattern.
func (m *Matcher) Match(name string) bool {
	if !m.caseSensitive {
		name = fold(name)
	}
	if m.segments != nil {
		return matchSegments(m.segments, name)
	}
	return m.g.Match(name)
}

// matchSegments matches name against the literal pieces of a pattern that were
// separated by '*'.
func matchSegments(segments []string, name string) bool {
	if len(segments) == 1 {
		return name == segments[0]
	}

	first, last := segments[0], segments[len(segments)-1]
	if !strings.HasPrefix(name, first) {
		return false
	}
	name = name[len(first):]

	for _, seg := range segments[1 : len(segments)-1] {
		i := strings.Index(name, seg)
		if i < 0 {
			return false
		}
		name = name[i+len(seg):]
	}
	return strings.HasSuffix(name, last)
}

// fold lowercases the valid runes of s. Invalid bytes are kept as they are, so
// two different invalid bytes never fold to the same thing.
func fold(s string) string {
	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[0])
		} else {
			b.WriteString(strings.ToLower(s[:size]))
		}
		s = s[size:]
	}
	return b.String()
}

// String returns the pattern as compiled (lowered for case-insensitive matchers).
func (m *Matcher) String() string {
	return m.pattern
}

// MatchGlob compiles pattern and matches it against name in one step.
func MatchGlob(pattern, name string, caseSensitive bool) (bool, error) {
	m, err := Compile(pattern, caseSensitive)
	if err != nil {
		return false, err
	}
	return m.Match(name), nil
}
