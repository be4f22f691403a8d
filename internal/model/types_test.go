package model

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCacheVersionOrdering verifies the component-wise lexicographic
// ordering over dot-split parts. The ordering is intentionally a string
// comparison per component, matching the directory-naming convention of
// the game's embedded browser.
func TestCacheVersionOrdering(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2.14.0.0", "2.15.0.0", -1},
		{"2.15.0.0", "2.15.0.0", 0},
		{"2.15.0.1", "2.15.0.0", 1},
		// Shorter tuple that is a prefix of a longer one orders first.
		{"2.15", "2.15.0.0", -1},
		// Lexicographic, not numeric: "10" < "9" as strings.
		{"10.0", "9.0", -1},
	}

	for _, tc := range cases {
		got := ParseCacheVersion(tc.a).Compare(ParseCacheVersion(tc.b))
		assert.Equal(t, tc.want, got, "Compare(%q, %q)", tc.a, tc.b)
	}
}

// TestMaxCacheVersion_OrderIndependent verifies that the selected maximum
// is deterministic regardless of input order. We shuffle the same name
// set repeatedly and require the same winner every time.
func TestMaxCacheVersion_OrderIndependent(t *testing.T) {
	names := []string{"2.13.0.0", "2.15.0.0", "2.14.1.0", "2.9.0.0", "2.15"}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		shuffled := append([]string(nil), names...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		max, ok := MaxCacheVersion(shuffled)
		require.True(t, ok)
		assert.Equal(t, "2.9.0.0", max.Name,
			"lexicographic ordering puts \"9\" above \"15\" component-wise")
	}
}

// TestMaxCacheVersion_Empty verifies that an empty name list reports
// no maximum rather than a zero value.
func TestMaxCacheVersion_Empty(t *testing.T) {
	_, ok := MaxCacheVersion(nil)
	assert.False(t, ok)
}

// TestResolvedPath_Found verifies the found/not-found distinction and the
// human-readable rendering used by the locate command.
func TestResolvedPath_Found(t *testing.T) {
	rp := ResolvedPath{Path: "/opt/games/StarRail", Provenance: ProvenanceLauncherConfig}
	assert.True(t, rp.Found())
	assert.Equal(t, "/opt/games/StarRail (launcher-config)", rp.String())

	none := NoPath()
	assert.False(t, none.Found())
	assert.Equal(t, "(not found)", none.String())
}

// TestProvenance_IsValid verifies the closed set of evidence sources.
func TestProvenance_IsValid(t *testing.T) {
	for _, p := range []Provenance{ProvenanceOverride, ProvenanceLogScrape, ProvenanceLauncherConfig, ProvenanceNone} {
		assert.True(t, p.IsValid(), "%s should be valid", p)
	}
	assert.False(t, Provenance("registry").IsValid())
}

// TestCLIError_Wrapping verifies that CLIError participates in Go's
// error-wrapping conventions so callers can use errors.Is/errors.As.
func TestCLIError_Wrapping(t *testing.T) {
	underlying := errors.New("connection refused")
	err := WrapCLIError(ExitFailure, "no suitable port found", underlying)

	assert.Equal(t, "no suitable port found: connection refused", err.Error())
	assert.True(t, errors.Is(err, underlying))

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, ExitFailure, cliErr.Code)

	plain := NewCLIError(ExitFailure, "unsupported platform")
	assert.Equal(t, "unsupported platform", plain.Error())
	assert.Nil(t, plain.Unwrap())
}
