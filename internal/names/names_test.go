package names_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/objects2xlsx/go-xlsxgen/internal/names"
)

func TestSanitizeRemovesForbiddenCharacters(t *testing.T) {
	got := names.Sanitize("Sales/Q1:2026", names.Options{})
	require.False(t, strings.ContainsAny(got, "/\\[]*?:"))
	require.Equal(t, "SalesQ12026", got)
}

func TestSanitizeReplacesForbiddenCharacters(t *testing.T) {
	got := names.Sanitize("A/B", names.Options{
		Strategy:     names.Replace,
		Replacements: map[rune]rune{'/': '-'},
	})
	require.Equal(t, "A-B", got)
}

func TestSanitizeTrimsQuotes(t *testing.T) {
	require.Equal(t, "Report", names.Sanitize("'Report'", names.Options{}))
}

func TestSanitizeFallsBackToDefaultName(t *testing.T) {
	require.Equal(t, "Sheet", names.Sanitize("///", names.Options{}))
	require.Equal(t, "Custom", names.Sanitize("***", names.Options{DefaultName: "Custom"}))
}

func TestSanitizeTruncatesTo31Chars(t *testing.T) {
	long := strings.Repeat("a", 50)
	got := names.Sanitize(long, names.Options{})
	require.Len(t, []rune(got), 31)
}

func TestSanitizeIsIdempotent(t *testing.T) {
	// 30 'x's, then a quote, then more filler: the 31st rune (1-based) is
	// the quote, so truncating to 31 runes lands exactly on it. The first
	// Sanitize call must trim that trailing quote itself rather than
	// leaving a result a second call would shorten further.
	truncatedOntoQuote := strings.Repeat("x", 30) + "'" + strings.Repeat("y", 10)

	inputs := []string{"Sales/Q1:2026", "'quoted'", "***", strings.Repeat("x", 40), truncatedOntoQuote}
	for _, in := range inputs {
		once := names.Sanitize(in, names.Options{})
		twice := names.Sanitize(once, names.Options{})
		require.Equal(t, once, twice, "Sanitize must be idempotent for %q", in)
	}
}

func TestDedupAppendsDisambiguatorOnCollision(t *testing.T) {
	used := map[string]bool{}
	a := names.Dedup("Sheet", used)
	b := names.Dedup("Sheet", used)
	require.Equal(t, "Sheet", a)
	require.NotEqual(t, a, b)
	require.True(t, used[b])
}
