// Package normalizer turns raw evidence text into the feature string the
// hoax classifier was trained on. Deterministic, no I/O.
package normalizer

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// Marker tokens appended for style signals. Lowercase alphanumeric so
	// they survive a second pass unchanged.
	markerCaps  = "sinyalcaps"
	markerPunct = "sinyalseru"
	markerBait  = "sinyalbait"

	capsRatioThreshold = 0.3
)

var (
	bracketSpans = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)
	nonCharset   = regexp.MustCompile(`[^a-z0-9\s]+`)
	spaces       = regexp.MustCompile(`\s+`)

	// Trigger words common in Indonesian chain-message hoaxes.
	baitWords = []string{"viralkan", "sebarkan", "awas", "hati-hati", "terbongkar"}
)

// Normalize maps raw evidence text to classifier input. Bracketed and
// parenthesized spans are treated as annotation noise. Style signals
// (shouting, repeated punctuation, bait lexicon) are measured before
// lowercasing and appended as marker tokens in fixed order.
func Normalize(raw string) string {
	text := bracketSpans.ReplaceAllString(raw, " ")

	shouting := capsRatio(text) > capsRatioThreshold
	punct := strings.Contains(text, "!!") || strings.Contains(text, "??")

	lowered := strings.ToLower(text)
	bait := false
	for _, w := range baitWords {
		if strings.Contains(lowered, w) {
			bait = true
			break
		}
	}

	cleaned := nonCharset.ReplaceAllString(lowered, " ")
	cleaned = strings.TrimSpace(spaces.ReplaceAllString(cleaned, " "))

	present := make(map[string]bool)
	for _, tok := range strings.Fields(cleaned) {
		present[tok] = true
	}

	// A marker already in the text means the input was normalized before;
	// appending again would break idempotence.
	var markers []string
	if shouting && !present[markerCaps] {
		markers = append(markers, markerCaps)
	}
	if punct && !present[markerPunct] {
		markers = append(markers, markerPunct)
	}
	if bait && !present[markerBait] {
		markers = append(markers, markerBait)
	}

	if len(markers) == 0 {
		return cleaned
	}
	if cleaned == "" {
		return strings.Join(markers, " ")
	}
	return cleaned + " " + strings.Join(markers, " ")
}

// capsRatio is the share of uppercase letters among alphabetic runes.
// Zero alphabetic runes means the signal cannot fire.
func capsRatio(text string) float64 {
	var upper, letters int
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}
