// ai-smoketest exercises the configured AI providers with a canned
// fact-check prompt and reports whether a verdict can be extracted from
// the response. Useful when rotating keys or trying new model names.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	aicore "github.com/sentra-id/cekfakta/src/ai/core"
	_ "github.com/sentra-id/cekfakta/src/ai/providers"
	"github.com/sentra-id/cekfakta/src/scorer"
	"github.com/sentra-id/cekfakta/src/search"
	"github.com/sentra-id/cekfakta/src/verdict"
)

var (
	providersFlag = flag.String("providers", "gemini", "Comma-separated provider list")
	modelFlag     = flag.String("model", "", "Override model name")
	claimFlag     = flag.String("claim", defaultClaim, "Claim to fact-check")
	timeoutFlag   = flag.Duration("timeout", 45*time.Second, "Per-provider timeout")
	maxLenFlag    = flag.Int("max-bytes", 1200, "Maximum bytes of output to print per response (0=unlimited)")
)

const defaultClaim = "Presiden mengumumkan libur nasional selama satu bulan penuh"

func main() {
	log.SetFlags(0)
	flag.Parse()

	providers := splitList(*providersFlag)
	if len(providers) == 0 {
		log.Fatal("no providers specified")
	}

	for _, provider := range providers {
		if err := runProvider(provider); err != nil {
			log.Printf("[%s] ERROR: %v", provider, err)
		}
	}
}

func runProvider(provider string) error {
	client, err := aicore.NewClient(aicore.FactoryConfig{
		Provider:  provider,
		Model:     *modelFlag,
		GeminiKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIKey: os.Getenv("OPENAI_API_KEY"),
	})
	if err != nil {
		return fmt.Errorf("client init: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	prompt := verdict.BuildPrompt(*claimFlag, cannedEvidence())

	start := time.Now()
	reply, err := client.Respond(ctx, prompt, aicore.Options{Model: *modelFlag})
	if err != nil {
		return err
	}

	fmt.Printf("=== %s ===\n", provider)
	fmt.Printf("respond ✅ (%.1fs) verdict=%s\n%s\n",
		time.Since(start).Seconds(), verdict.Extract(reply), truncate(reply, *maxLenFlag))
	return nil
}

func cannedEvidence() []scorer.ScoredEvidence {
	return []scorer.ScoredEvidence{
		{
			Result: search.Result{
				Title:   "Cek Fakta: tidak ada pengumuman libur nasional sebulan",
				Snippet: "Istana membantah kabar yang beredar di grup pesan berantai.",
				URL:     "https://cekfakta.example.id/libur-nasional",
			},
			HoaxProbability: 0.2,
			TrustTag:        scorer.TagTrusted,
		},
		{
			Result: search.Result{
				Title:   "VIRAL!! Libur sebulan penuh, sebarkan sebelum dihapus",
				Snippet: "Pesan berantai tanpa sumber resmi.",
				URL:     "https://blog.example.id/viral-libur",
			},
			HoaxProbability: 0.9,
			TrustTag:        scorer.TagSuspect,
		},
	}
}

func splitList(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	var out []string
	seen := map[string]struct{}{}
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[:limit]) + "...(truncated)"
}
