// Package tokenmatch matches identifier tokens such as ECU names against glob patterns.
//
// Pattern syntax:
//   - * matches any run of characters, including none
//   - ? matches exactly one character
//   - [...] matches one character from the set, [!...] negates it
//   - \ escapes the next character
//
// Matching is case-insensitive, since device names are often typed loosely.
package tokenmatch

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Matcher holds compiled patterns. The zero value matches nothing.
type Matcher struct {
	patterns []*regexp.Regexp
}

// New compiles patterns into a Matcher.
func New(patterns ...string) (*Matcher, error) {
	matcher := &Matcher{patterns: make([]*regexp.Regexp, 0, len(patterns))}

	for _, p := range patterns {
		re, err := compile(p)
		if err != nil {
			return nil, err
		}

		matcher.patterns = append(matcher.patterns, re)
	}

	return matcher, nil
}

// Match reports whether token matches pattern.
func Match(pattern, token string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(token), nil
}

// Any reports whether token matches at least one pattern.
func (m *Matcher) Any(token string) bool {
	for _, re := range m.patterns {
		if re.MatchString(token) {
			return true
		}
	}

	return false
}

// Filter returns the tokens that match at least one pattern, preserving order.
// A Matcher without patterns returns every token.
func Filter[T ~string](m *Matcher, tokens []T) []T {
	if len(m.patterns) == 0 {
		return tokens
	}

	var out []T

	for _, token := range tokens {
		if m.Any(string(token)) {
			out = append(out, token)
		}
	}

	return out
}

var compiled sync.Map //nolint:gochecknoglobals // compiled patterns are immutable and shared

func compile(pattern string) (*regexp.Regexp, error) {
	if v, ok := compiled.Load(pattern); ok {
		re, _ := v.(*regexp.Regexp) //nolint:errcheck // only *regexp.Regexp is stored

		return re, nil
	}

	expr, err := translate(pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	compiled.Store(pattern, re)

	return re, nil
}

// translate turns a glob into an anchored, case-insensitive regular expression.
func translate(pattern string) (string, error) {
	var out strings.Builder

	out.WriteString("(?i)^")

	for idx := 0; idx < len(pattern); idx++ {
		switch c := pattern[idx]; c {
		case '*':
			out.WriteString(".*")
		case '?':
			out.WriteString(".")
		case '\\':
			if idx+1 == len(pattern) {
				return "", fmt.Errorf("trailing backslash")
			}

			idx++
			out.WriteString(regexp.QuoteMeta(pattern[idx : idx+1]))
		case '[':
			end := classEnd(pattern, idx)
			if end < 0 {
				return "", fmt.Errorf("unclosed character class")
			}

			out.WriteString(class(pattern[idx+1 : end]))

			idx = end
		default:
			out.WriteString(regexp.QuoteMeta(pattern[idx : idx+1]))
		}
	}

	out.WriteString("$")

	return out.String(), nil
}

// classEnd returns the index of the ] closing the class opened at start, or -1.
// A ] directly after [ or [! is a literal member.
func classEnd(pattern string, start int) int {
	idx := start + 1

	if idx < len(pattern) && pattern[idx] == '!' {
		idx++
	}

	if idx < len(pattern) && pattern[idx] == ']' {
		idx++
	}

	if end := strings.IndexByte(pattern[idx:], ']'); end >= 0 {
		return idx + end
	}

	return -1
}

// class converts the body of a glob character class into a regexp class.
func class(body string) string {
	negate := strings.HasPrefix(body, "!")
	body = strings.TrimPrefix(body, "!")

	var out strings.Builder

	out.WriteByte('[')

	if negate {
		out.WriteByte('^')
	}

	for idx := range len(body) {
		switch c := body[idx]; c {
		case '\\', ']', '[', '^':
			out.WriteByte('\\')
			out.WriteByte(c)
		default:
			out.WriteByte(c)
		}
	}

	out.WriteByte(']')

	return out.String()
}
