// Package names implements spec.md §6's sheet-name sanitizer: a pure
// function that silently repairs invalid sheet names instead of rejecting
// them, inverting adnsv-go-xl's validateSheetName (workbook.go), which
// returns an error for the same forbidden-character set and length limit.
// This inversion is the REDESIGN FLAG spec.md §7 calls for explicitly:
// "The sheet-name sanitizer silently repairs bad names ... These are
// normalization steps, not errors."
package names

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CharStrategy controls how forbidden characters are handled.
type CharStrategy int

const (
	// Remove deletes every forbidden character.
	Remove CharStrategy = iota
	// Replace substitutes forbidden characters via a char->replacement map.
	Replace
)

// forbidden is the Excel-mandated forbidden character set: / \ [ ] * ? :
const forbidden = "/\\[]*?:"

// Options configures Sanitize. The zero value is the common case: remove
// forbidden characters, fall back to "Sheet" when empty.
type Options struct {
	Strategy     CharStrategy
	Replacements map[rune]rune // used when Strategy == Replace
	DefaultName  string        // used when the sanitized result is empty; "" means "Sheet"
}

// Sanitize applies spec.md §6's four-step pure transform:
//  1. strip leading/trailing single quotes
//  2. remove or replace forbidden characters per the configured strategy
//  3. substitute the default name if the result is empty
//  4. truncate to 31 characters
//
// Sanitize is idempotent: Sanitize(Sanitize(x)) == Sanitize(x) — spec.md
// §8's universal invariant. Input is NFC-normalized first so visually
// identical names compare and truncate identically regardless of
// composed/decomposed Unicode input, mirroring CynicDog-xlmd's reliance on
// golang.org/x/text for the same class of normalization.
func Sanitize(name string, opts Options) string {
	s := norm.NFC.String(name)
	s = strings.Trim(s, "'")

	switch opts.Strategy {
	case Replace:
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(forbidden, r) {
				if rep, ok := opts.Replacements[r]; ok {
					return rep
				}
				return -1
			}
			return r
		}, s)
	default:
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(forbidden, r) {
				return -1
			}
			return r
		}, s)
	}

	// A sanitized result could still start/end with a quote introduced by
	// character removal exposing one; re-trim defensively so idempotence
	// holds regardless of input shape.
	s = strings.Trim(s, "'")

	if s == "" {
		s = defaultName(opts)
	}

	runes := []rune(s)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	s = string(runes)

	// Truncation can expose a new trailing quote (one that survived
	// forbidden-character removal only because it sat past rune 31) —
	// trim it too, otherwise a second Sanitize call would trim it and
	// produce a shorter string, breaking Sanitize(Sanitize(x)) == Sanitize(x).
	s = strings.Trim(s, "'")
	if s == "" {
		s = defaultName(opts)
	}
	return s
}

func defaultName(opts Options) string {
	if opts.DefaultName != "" {
		return opts.DefaultName
	}
	return "Sheet"
}

// Dedup returns name, or name suffixed with a short numeric disambiguator
// if it collides with an entry already in used (case-sensitive, as Excel
// sheet names are). used is updated with whichever name is returned.
// Excel itself rejects duplicate sheet names outright (adnsv-go-xl's
// AddSheet does the same); spec.md's silent-repair philosophy extends that
// into "never fail the whole write() over a name collision" instead.
func Dedup(name string, used map[string]bool) string {
	if !used[name] {
		used[name] = true
		return name
	}
	base := name
	if runes := []rune(base); len(runes) > 28 {
		base = string(runes[:28])
	}
	for i := 2; ; i++ {
		candidate := Sanitize(base+"_"+strconv.Itoa(i), Options{})
		if !used[candidate] {
			used[candidate] = true
			return candidate
		}
	}
}
