package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStripsBracketSpans(t *testing.T) {
	got := Normalize("pemerintah [breaking] umumkan (update) kebijakan baru")
	assert.Equal(t, "pemerintah umumkan kebijakan baru", got)
}

func TestNormalizeCharset(t *testing.T) {
	got := Normalize("harga BBM naik 30% mulai besok, cek di https://contoh.id")
	assert.NotContains(t, got, "%")
	assert.NotContains(t, got, "/")
	assert.NotContains(t, got, ",")
	assert.Contains(t, got, "harga bbm naik 30")
}

func TestNormalizeShoutingMarker(t *testing.T) {
	got := Normalize("VAKSIN BERBAHAYA UNTUK ANAK")
	assert.Contains(t, got, markerCaps)

	got = Normalize("vaksin aman untuk anak")
	assert.NotContains(t, got, markerCaps)
}

func TestNormalizeNoShoutingWithoutLetters(t *testing.T) {
	// No alphabetic characters: the caps ratio is undefined and must not fire.
	got := Normalize("1234 5678")
	assert.Equal(t, "1234 5678", got)
}

func TestNormalizePunctuationMarker(t *testing.T) {
	assert.Contains(t, Normalize("benarkah ini terjadi??"), markerPunct)
	assert.Contains(t, Normalize("bahaya!! jangan dibuka"), markerPunct)
	assert.NotContains(t, Normalize("benarkah ini terjadi?"), markerPunct)
}

func TestNormalizeBaitMarker(t *testing.T) {
	assert.Contains(t, Normalize("Tolong SEBARKAN ke semua grup"), markerBait)
	assert.Contains(t, Normalize("hati-hati penipuan baru"), markerBait)
	assert.NotContains(t, Normalize("berita ekonomi hari ini"), markerBait)
}

func TestNormalizeMarkerOrder(t *testing.T) {
	got := Normalize("AWAS!! VIRALKAN SEKARANG")
	assert.Equal(t, "awas viralkan sekarang sinyalcaps sinyalseru sinyalbait", got)
}

func TestNormalizeDeterministic(t *testing.T) {
	in := "Presiden [foto] umumkan LIBUR nasional!!"
	require.Equal(t, Normalize(in), Normalize(in))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"AWAS!! VIRALKAN berita ini",
		"harga beras stabil bulan depan",
		"",
		"??!!",
		"Tolong sebarkan: vaksin palsu beredar",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("[semua] (dibuang)"))
}
