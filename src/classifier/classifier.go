// Package classifier loads the frozen hoax/clickbait model artifact and
// serves probability predictions. The artifact is a multinomial naive
// Bayes model exported as JSON: class log-priors plus per-class token
// log-likelihoods over the normalized vocabulary. Training happens
// elsewhere; this package only consumes the export.
package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

type artifact struct {
	Labels        []string                      `json:"labels"`
	LogPrior      map[string]float64            `json:"log_prior"`
	LogLikelihood map[string]map[string]float64 `json:"log_likelihood"`
	OOV           map[string]float64            `json:"oov_log_likelihood"`
}

// Classifier is read-only after Load and safe for concurrent use.
type Classifier struct {
	art artifact
}

// Load reads the model artifact from disk. Callers decide whether a load
// failure is fatal; the scorer treats a nil classifier as "score neutral".
func Load(path string) (*Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: read artifact: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("classifier: parse artifact: %w", err)
	}
	if len(art.Labels) == 0 {
		return nil, fmt.Errorf("classifier: artifact has no labels")
	}
	for _, label := range art.Labels {
		if _, ok := art.LogPrior[label]; !ok {
			return nil, fmt.Errorf("classifier: label %q missing log prior", label)
		}
	}

	return &Classifier{art: art}, nil
}

// Labels returns the class labels in artifact order.
func (c *Classifier) Labels() []string {
	out := make([]string, len(c.art.Labels))
	copy(out, c.art.Labels)
	return out
}

// PredictProbabilities scores normalized text and returns a probability
// per class label. Probabilities sum to 1.
func (c *Classifier) PredictProbabilities(text string) (map[string]float64, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("classifier: empty input")
	}

	scores := make(map[string]float64, len(c.art.Labels))
	for _, label := range c.art.Labels {
		score := c.art.LogPrior[label]
		likelihoods := c.art.LogLikelihood[label]
		oov := c.art.OOV[label]
		for _, tok := range tokens {
			if ll, ok := likelihoods[tok]; ok {
				score += ll
			} else {
				score += oov
			}
		}
		scores[label] = score
	}

	return softmax(scores), nil
}

// softmax converts log scores to probabilities, shifting by the max for
// numeric stability.
func softmax(scores map[string]float64) map[string]float64 {
	max := math.Inf(-1)
	for _, s := range scores {
		if s > max {
			max = s
		}
	}

	var sum float64
	exps := make(map[string]float64, len(scores))
	for label, s := range scores {
		e := math.Exp(s - max)
		exps[label] = e
		sum += e
	}

	probs := make(map[string]float64, len(scores))
	for label, e := range exps {
		probs[label] = e / sum
	}
	return probs
}
