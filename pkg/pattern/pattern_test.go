package pattern

import (
	"testing"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPatterns(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected []string
	}{
		{"empty", "", []string{}},
		{"single", "prod-.*", []string{"prod-.*"}},
		{"trims and drops empty", " a , ,b,", []string{"a", "b"}},
		{"dedupes keeping order", "b,a,b,a", []string{"b", "a"}},
		{"only commas", ",,,", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitPatterns(tt.spec))
		})
	}
}

func TestMatcher_MatchesAny(t *testing.T) {
	m, err := Compile("prod-.*")
	require.NoError(t, err)

	var matched []string
	for _, ns := range []string{"prod-a", "prod-b", "stage-a"} {
		if m.MatchesAny(ns) {
			matched = append(matched, ns)
		}
	}
	assert.Equal(t, []string{"prod-a", "prod-b"}, matched)
}

func TestMatcher_PrefixAnchored(t *testing.T) {
	m := MustCompile("app")
	assert.True(t, m.MatchesAny("app"))
	assert.True(t, m.MatchesAny("app.kubernetes.io/name"))
	assert.False(t, m.MatchesAny("my-app"))
}

func TestMatcher_Alternation(t *testing.T) {
	// the group keeps the anchor applied to every branch
	m := MustCompile("a|b")
	assert.True(t, m.MatchesAny("b-1"))
	assert.False(t, m.MatchesAny("xb"))
}

func TestMatcher_EmptyMatchesNothing(t *testing.T) {
	m := MustCompile("")
	assert.False(t, m.MatchesAny(""))
	assert.False(t, m.MatchesAny("default"))

	var nilMatcher *Matcher
	assert.False(t, nilMatcher.MatchesAny("default"))
}

func TestMatcher_MatchAll(t *testing.T) {
	m := MustCompile(MatchAll)
	for _, s := range []string{"", "default", "kube-system"} {
		assert.True(t, m.MatchesAny(s), s)
	}
}

func TestMatcher_MultiplePatternsAreOred(t *testing.T) {
	m := MustCompile("kube-.*, default")
	assert.True(t, m.MatchesAny("kube-system"))
	assert.True(t, m.MatchesAny("default"))
	assert.False(t, m.MatchesAny("prod"))
	assert.Equal(t, []string{"kube-.*", "default"}, m.Patterns())
}

func TestCompile_InvalidPattern(t *testing.T) {
	_, err := Compile("ok,([")
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrorTypeConfig, cerrors.GetErrorType(err))
	assert.Contains(t, err.Error(), "([")

	_, err = MatchesAny("x", "([")
	require.Error(t, err)
}

func TestMatcher_FilterKeys(t *testing.T) {
	labels := map[string]string{
		"app":                    "web",
		"tier":                   "front",
		"kubernetes.io/hostname": "node-1",
		"kubernetes.io/arch":     "amd64",
	}

	got := MustCompile("app").With("kubernetes.io/hostname").FilterKeys(labels)
	assert.Equal(t, map[string]string{"app": "web", "kubernetes.io/hostname": "node-1"}, got)

	got = MustCompile("").With("kubernetes.io/hostname").FilterKeys(labels)
	assert.Equal(t, map[string]string{"kubernetes.io/hostname": "node-1"}, got)

	assert.Empty(t, MustCompile("").FilterKeys(labels))
}

func TestMatcher_WithDoesNotModifyReceiver(t *testing.T) {
	base := MustCompile("app")
	_ = base.With("zone")
	assert.False(t, base.MatchesAny("zone"))
}

func TestMatchesAny(t *testing.T) {
	ok, err := MatchesAny("prod-a", "stage-.*,prod-.*")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = MatchesAny("prod-a", "")
	require.NoError(t, err)
	assert.False(t, ok)
}
