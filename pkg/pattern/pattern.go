// Package pattern implements the comma separated, prefix anchored regular
// expression filters used to select namespaces and labels during discovery.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
)

// MatchAll is the pattern that selects every candidate
const MatchAll = ".*"

// Matcher holds a compiled pattern set. The zero value matches nothing.
type Matcher struct {
	patterns []string
	regexps  []*regexp.Regexp
	literals map[string]struct{}
}

// SplitPatterns splits a comma separated pattern spec into its tokens.
// Tokens are trimmed, empty tokens are dropped and duplicates keep their
// first position.
func SplitPatterns(spec string) []string {
	seen := map[string]struct{}{}
	patterns := []string{}
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		patterns = append(patterns, token)
	}
	return patterns
}

// Compile builds a Matcher out of a comma separated pattern spec
func Compile(spec string) (*Matcher, error) {
	patterns := SplitPatterns(spec)
	m := &Matcher{patterns: patterns, literals: map[string]struct{}{}}
	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + p + ")")
		if err != nil {
			return nil, cerrors.Error{
				ErrorCode: cerrors.ErrorTypeConfig,
				Reason:    fmt.Sprintf("invalid pattern '%s', %v", p, err),
				Target:    spec,
			}
		}
		m.regexps = append(m.regexps, re)
	}
	return m, nil
}

// MustCompile is like Compile but panics on an invalid pattern
func MustCompile(spec string) *Matcher {
	m, err := Compile(spec)
	if err != nil {
		panic(err)
	}
	return m
}

// With returns a copy of the matcher that also accepts the given keys verbatim
func (m *Matcher) With(literals ...string) *Matcher {
	out := &Matcher{literals: map[string]struct{}{}}
	if m != nil {
		out.patterns = m.patterns
		out.regexps = m.regexps
		for k := range m.literals {
			out.literals[k] = struct{}{}
		}
	}
	for _, l := range literals {
		out.literals[l] = struct{}{}
	}
	return out
}

// Patterns returns the tokens the matcher was compiled from
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}

// MatchesAny reports whether candidate matches at least one pattern from its start
func (m *Matcher) MatchesAny(candidate string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.literals[candidate]; ok {
		return true
	}
	for _, re := range m.regexps {
		if re.MatchString(candidate) {
			return true
		}
	}
	return false
}

// FilterKeys returns the entries of labels whose key is matched
func (m *Matcher) FilterKeys(labels map[string]string) map[string]string {
	filtered := make(map[string]string)
	for k, v := range labels {
		if m.MatchesAny(k) {
			filtered[k] = v
		}
	}
	return filtered
}

// MatchesAny compiles patterns and matches candidate against them.
// An invalid pattern is reported as an error rather than a miss.
func MatchesAny(candidate, patterns string) (bool, error) {
	m, err := Compile(patterns)
	if err != nil {
		return false, err
	}
	return m.MatchesAny(candidate), nil
}
