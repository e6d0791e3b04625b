// Package verdict turns a claim plus tagged evidence into a model
// verdict, and extracts the structured status line back out of the
// free-form response.
package verdict

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sentra-id/cekfakta/src/ai/core"
	"github.com/sentra-id/cekfakta/src/scorer"
)

// ErrModelUnavailable signals that every configured model failed. The
// orchestrator maps it to a SYSTEM ERROR terminal state.
var ErrModelUnavailable = errors.New("verdict: no language model available")

const systemPrompt = "Kamu adalah Ahli Cek Fakta Indonesia. Kamu memverifikasi klaim user berdasarkan bukti pencarian, tanpa pernah mengarang sumber."

type Synthesizer struct {
	client        core.Client
	primaryModel  string
	fallbackModel string
}

func NewSynthesizer(client core.Client, primaryModel, fallbackModel string) *Synthesizer {
	return &Synthesizer{
		client:        client,
		primaryModel:  primaryModel,
		fallbackModel: fallbackModel,
	}
}

// Synthesize asks the primary model for a verdict; a rate-limit or quota
// failure earns exactly one retry on the fallback model. Anything else
// surfaces as ErrModelUnavailable.
func (s *Synthesizer) Synthesize(ctx context.Context, claim string, evidence []scorer.ScoredEvidence) (string, error) {
	prompt := BuildPrompt(claim, evidence)

	text, err := s.client.Respond(ctx, prompt, core.Options{
		Model:        s.primaryModel,
		SystemPrompt: systemPrompt,
	})
	if err == nil {
		return text, nil
	}

	if !core.IsRateLimit(err) || s.fallbackModel == "" {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	log.Printf("verdict: primary model %s throttled, retrying on %s: %v", s.primaryModel, s.fallbackModel, err)
	text, ferr := s.client.Respond(ctx, prompt, core.Options{
		Model:        s.fallbackModel,
		SystemPrompt: systemPrompt,
	})
	if ferr != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, ferr)
	}
	return text, nil
}

// BuildPrompt renders the fixed verdict template: the claim verbatim,
// one tagged line per evidence item, and the answer rubric.
func BuildPrompt(claim string, evidence []scorer.ScoredEvidence) string {
	var b strings.Builder

	b.WriteString("KLAIM USER: \"")
	b.WriteString(claim)
	b.WriteString("\"\n\nBUKTI PENCARIAN:\n")

	for _, item := range evidence {
		fmt.Fprintf(&b, "- [%s] %s (Link: %s)\n", item.TrustTag, item.Title, item.URL)
		if item.Snippet != "" {
			fmt.Fprintf(&b, "  %s\n", item.Snippet)
		}
	}

	b.WriteString(`
Instruksi:
1. Bandingkan Klaim User dengan Bukti Pencarian. Label [SUSPECT] berarti sumber itu sendiri terindikasi clickbait/hoaks, [TRUSTED] berarti sumber terlihat wajar.
2. Tulis baris "Status: FAKTA", "Status: HOAKS", atau "Status: TIDAK JELAS".
3. Tulis baris "Keyakinan: <angka>%" sebagai tingkat keyakinanmu.
4. Berikan penjelasan singkat dalam Bahasa Indonesia yang santai tapi tegas.
5. Kutip 2-3 link dari bukti di atas saja. Jangan pernah mengarang sumber lain.
`)

	return b.String()
}
