package verdict

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentra-id/cekfakta/src/ai/core"
	"github.com/sentra-id/cekfakta/src/scorer"
	"github.com/sentra-id/cekfakta/src/search"
)

type fakeClient struct {
	responses map[string]string
	errs      map[string]error
	calls     []string
	prompts   []string
}

func (f *fakeClient) Respond(_ context.Context, input string, opts core.Options) (string, error) {
	f.calls = append(f.calls, opts.Model)
	f.prompts = append(f.prompts, input)
	if err := f.errs[opts.Model]; err != nil {
		return "", err
	}
	return f.responses[opts.Model], nil
}

func packet() []scorer.ScoredEvidence {
	return []scorer.ScoredEvidence{
		{Result: search.Result{Title: "Klarifikasi resmi", Snippet: "Pemerintah membantah.", URL: "https://a.id/1"}, HoaxProbability: 0.2, TrustTag: scorer.TagTrusted},
		{Result: search.Result{Title: "VIRAL!!", URL: "https://b.id/2"}, HoaxProbability: 0.9, TrustTag: scorer.TagSuspect},
	}
}

func TestSynthesizeUsesPrimary(t *testing.T) {
	client := &fakeClient{responses: map[string]string{"utama": "Status: FAKTA"}}
	s := NewSynthesizer(client, "utama", "cadangan")

	text, err := s.Synthesize(context.Background(), "klaim", packet())
	require.NoError(t, err)
	assert.Equal(t, "Status: FAKTA", text)
	assert.Equal(t, []string{"utama"}, client.calls)
}

func TestSynthesizeFallsBackOnRateLimit(t *testing.T) {
	client := &fakeClient{
		errs:      map[string]error{"utama": fmt.Errorf("API error 429: rate_limit exceeded")},
		responses: map[string]string{"cadangan": "Status: HOAKS"},
	}
	s := NewSynthesizer(client, "utama", "cadangan")

	text, err := s.Synthesize(context.Background(), "klaim", packet())
	require.NoError(t, err)
	assert.Equal(t, "Status: HOAKS", text)
	// Exactly one retry, same prompt both times.
	require.Equal(t, []string{"utama", "cadangan"}, client.calls)
	assert.Equal(t, client.prompts[0], client.prompts[1])
}

func TestSynthesizeNonRateLimitDoesNotRetry(t *testing.T) {
	client := &fakeClient{
		errs:      map[string]error{"utama": errors.New("invalid request")},
		responses: map[string]string{"cadangan": "Status: FAKTA"},
	}
	s := NewSynthesizer(client, "utama", "cadangan")

	_, err := s.Synthesize(context.Background(), "klaim", packet())
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Equal(t, []string{"utama"}, client.calls)
}

func TestSynthesizeBothModelsFail(t *testing.T) {
	client := &fakeClient{
		errs: map[string]error{
			"utama":    errors.New("quota exceeded"),
			"cadangan": errors.New("server error"),
		},
	}
	s := NewSynthesizer(client, "utama", "cadangan")

	_, err := s.Synthesize(context.Background(), "klaim", packet())
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Equal(t, []string{"utama", "cadangan"}, client.calls)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Presiden umumkan libur nasional", packet())

	assert.Contains(t, prompt, `KLAIM USER: "Presiden umumkan libur nasional"`)
	assert.Contains(t, prompt, "- [TRUSTED] Klarifikasi resmi (Link: https://a.id/1)")
	assert.Contains(t, prompt, "Pemerintah membantah.")
	assert.Contains(t, prompt, "- [SUSPECT] VIRAL!! (Link: https://b.id/2)")
	assert.Contains(t, prompt, `"Status: FAKTA", "Status: HOAKS", atau "Status: TIDAK JELAS"`)
	assert.Contains(t, prompt, "Kutip 2-3 link")
}
