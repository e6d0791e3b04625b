// Package scorer assigns each evidence item a hoax likelihood and a
// discrete trust tag using the frozen classifier. Scoring never fails:
// with no classifier, or when a prediction errors, items fall back to a
// neutral 0.5 prior.
package scorer

import (
	"log"

	"github.com/sentra-id/cekfakta/src/normalizer"
	"github.com/sentra-id/cekfakta/src/search"
)

type Tag string

const (
	TagTrusted Tag = "TRUSTED"
	TagNeutral Tag = "NEUTRAL"
	TagSuspect Tag = "SUSPECT"
)

const (
	hoaxLabel = "Hoax"
	// Artifact position used when the label set lacks the hoax label.
	fallbackLabelIndex = 1

	neutralProbability = 0.5

	suspectThreshold = 0.7
	neutralThreshold = 0.4
)

// Predictor is the frozen classifier surface the scorer needs.
type Predictor interface {
	PredictProbabilities(text string) (map[string]float64, error)
	Labels() []string
}

// ScoredEvidence is an evidence item plus its hoax likelihood.
type ScoredEvidence struct {
	search.Result
	HoaxProbability float64
	TrustTag        Tag
}

type Scorer struct {
	predictor Predictor
}

// New builds a scorer. A nil predictor is allowed and degrades every
// score to the neutral prior.
func New(predictor Predictor) *Scorer {
	if predictor == nil {
		log.Printf("scorer: no classifier loaded, scoring degraded to neutral")
	}
	return &Scorer{predictor: predictor}
}

// Score tags a single evidence item. Order of ScoreAll output matches
// its input.
func (s *Scorer) Score(item search.Result) ScoredEvidence {
	p := s.hoaxProbability(item)
	return ScoredEvidence{
		Result:          item,
		HoaxProbability: p,
		TrustTag:        TagFor(p),
	}
}

func (s *Scorer) ScoreAll(items []search.Result) []ScoredEvidence {
	out := make([]ScoredEvidence, 0, len(items))
	for _, item := range items {
		out = append(out, s.Score(item))
	}
	return out
}

func (s *Scorer) hoaxProbability(item search.Result) float64 {
	if s.predictor == nil {
		return neutralProbability
	}

	text := normalizer.Normalize(item.Title + " " + item.Snippet)
	probs, err := s.predictor.PredictProbabilities(text)
	if err != nil {
		log.Printf("scorer: prediction failed, using neutral prior: %v", err)
		return neutralProbability
	}

	if p, ok := probs[hoaxLabel]; ok {
		return p
	}

	labels := s.predictor.Labels()
	if fallbackLabelIndex < len(labels) {
		if p, ok := probs[labels[fallbackLabelIndex]]; ok {
			return p
		}
	}

	log.Printf("scorer: hoax label missing from classifier output, using neutral prior")
	return neutralProbability
}

// TagFor discretizes a hoax probability. Thresholds are strict: exactly
// 0.7 is still NEUTRAL, exactly 0.4 is still TRUSTED.
func TagFor(p float64) Tag {
	switch {
	case p > suspectThreshold:
		return TagSuspect
	case p > neutralThreshold:
		return TagNeutral
	default:
		return TagTrusted
	}
}
