package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentra-id/cekfakta/src/models"
	"github.com/sentra-id/cekfakta/src/scorer"
	"github.com/sentra-id/cekfakta/src/search"
	"github.com/sentra-id/cekfakta/src/verdict"
)

type fakeGatherer struct {
	results []search.Result
}

func (f *fakeGatherer) Gather(string) []search.Result { return f.results }

type fakeSynth struct {
	text  string
	err   error
	panic bool
	got   []scorer.ScoredEvidence
}

func (f *fakeSynth) Synthesize(_ context.Context, _ string, ev []scorer.ScoredEvidence) (string, error) {
	if f.panic {
		panic("synthesizer exploded")
	}
	f.got = ev
	return f.text, f.err
}

func evidence(n int) []search.Result {
	var out []search.Result
	for i := 0; i < n; i++ {
		out = append(out, search.Result{
			Title:   fmt.Sprintf("Judul %d", i),
			Snippet: fmt.Sprintf("Ringkasan %d", i),
			URL:     fmt.Sprintf("https://contoh.id/%d", i),
		})
	}
	return out
}

func TestProcessNoEvidence(t *testing.T) {
	p := New(&fakeGatherer{}, scorer.New(nil), &fakeSynth{}, verdict.Extract)
	out := p.Process(context.Background(), "Presiden umumkan libur nasional")

	assert.True(t, out.NoEvidence)
	assert.Equal(t, models.VerdictNotFound, out.Verdict)
	assert.NoError(t, out.Err)
	assert.Empty(t, out.Answer)
}

func TestProcessHappyPathWithoutClassifier(t *testing.T) {
	synth := &fakeSynth{text: "Penjelasan panjang.\nStatus: FAKTA\nKeyakinan: 85%"}
	p := New(&fakeGatherer{results: evidence(3)}, scorer.New(nil), synth, verdict.Extract)

	out := p.Process(context.Background(), "klaim")
	require.NoError(t, out.Err)
	assert.Equal(t, "FAKTA", out.Verdict)
	assert.Equal(t, synth.text, out.Answer)

	// Classifier absent: every item scored at the neutral prior, order kept.
	require.Len(t, synth.got, 3)
	for i, ev := range synth.got {
		assert.Equal(t, fmt.Sprintf("Judul %d", i), ev.Title)
		assert.InDelta(t, 0.5, ev.HoaxProbability, 1e-9)
		assert.Equal(t, scorer.TagNeutral, ev.TrustTag)
	}
}

func TestProcessSynthesisFailure(t *testing.T) {
	synth := &fakeSynth{err: fmt.Errorf("%w: both models down", verdict.ErrModelUnavailable)}
	p := New(&fakeGatherer{results: evidence(2)}, scorer.New(nil), synth, verdict.Extract)

	out := p.Process(context.Background(), "klaim")
	assert.Equal(t, models.VerdictSystemError, out.Verdict)
	assert.ErrorIs(t, out.Err, verdict.ErrModelUnavailable)
	assert.False(t, out.NoEvidence)
}

func TestProcessUnparseableAnswerIsUnknown(t *testing.T) {
	synth := &fakeSynth{text: "Model menulis bebas tanpa baris status."}
	p := New(&fakeGatherer{results: evidence(1)}, scorer.New(nil), synth, verdict.Extract)

	out := p.Process(context.Background(), "klaim")
	require.NoError(t, out.Err)
	assert.Equal(t, models.VerdictUnknown, out.Verdict)
	assert.Equal(t, synth.text, out.Answer)
}

func TestProcessRecoversPanic(t *testing.T) {
	p := New(&fakeGatherer{results: evidence(1)}, scorer.New(nil), &fakeSynth{panic: true}, verdict.Extract)

	out := p.Process(context.Background(), "klaim")
	assert.Equal(t, models.VerdictSystemError, out.Verdict)
	assert.Error(t, out.Err)
}
