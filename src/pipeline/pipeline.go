// Package pipeline runs one claim through search, scoring, verdict
// synthesis and extraction. Each inbound message gets its own run; runs
// share only the read-only classifier and the append-only store.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/sentra-id/cekfakta/src/models"
	"github.com/sentra-id/cekfakta/src/scorer"
	"github.com/sentra-id/cekfakta/src/search"
)

// Gatherer returns evidence for a claim. Empty means "nothing found",
// never a failure.
type Gatherer interface {
	Gather(claim string) []search.Result
}

// Synthesizer produces the verdict text for a claim and its evidence.
type Synthesizer interface {
	Synthesize(ctx context.Context, claim string, evidence []scorer.ScoredEvidence) (string, error)
}

// Extractor pulls the structured verdict out of the model text.
type Extractor func(text string) string

// Outcome is the terminal result of one pipeline run. Exactly one of the
// shapes holds: NoEvidence, Err != nil, or a synthesized Answer.
type Outcome struct {
	Answer     string
	Verdict    string
	Evidence   []scorer.ScoredEvidence
	NoEvidence bool
	Err        error
}

type Pipeline struct {
	gatherer Gatherer
	scorer   *scorer.Scorer
	synth    Synthesizer
	extract  Extractor
}

func New(g Gatherer, s *scorer.Scorer, synth Synthesizer, extract Extractor) *Pipeline {
	return &Pipeline{gatherer: g, scorer: s, synth: synth, extract: extract}
}

// Process runs the claim to a terminal state. It never panics outward:
// an unexpected panic is converted to a SYSTEM ERROR outcome so the
// caller can still reply and log.
func (p *Pipeline) Process(ctx context.Context, claim string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pipeline: panic recovered: %v", r)
			out = Outcome{Verdict: models.VerdictSystemError, Err: fmt.Errorf("pipeline panic: %v", r)}
		}
	}()

	results := p.gatherer.Gather(claim)
	if len(results) == 0 {
		return Outcome{Verdict: models.VerdictNotFound, NoEvidence: true}
	}

	evidence := p.scorer.ScoreAll(results)

	answer, err := p.synth.Synthesize(ctx, claim, evidence)
	if err != nil {
		log.Printf("pipeline: synthesis failed: %v", err)
		return Outcome{Verdict: models.VerdictSystemError, Evidence: evidence, Err: err}
	}

	return Outcome{
		Answer:   answer,
		Verdict:  p.extract(answer),
		Evidence: evidence,
	}
}
