package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	aicore "github.com/sentra-id/cekfakta/src/ai/core"
	_ "github.com/sentra-id/cekfakta/src/ai/providers"
	"github.com/sentra-id/cekfakta/src/bot"
	"github.com/sentra-id/cekfakta/src/classifier"
	"github.com/sentra-id/cekfakta/src/config"
	"github.com/sentra-id/cekfakta/src/data"
	"github.com/sentra-id/cekfakta/src/history"
	"github.com/sentra-id/cekfakta/src/pipeline"
	"github.com/sentra-id/cekfakta/src/scorer"
	"github.com/sentra-id/cekfakta/src/search"
	"github.com/sentra-id/cekfakta/src/verdict"
	"github.com/sentra-id/cekfakta/src/webserver"
)

func main() {
	dsn := config.LoadEnv()
	if dsn == "" {
		log.Fatal("MYSQL_DSN is required")
	}

	db, err := data.ConnectMySQL(dsn)
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	cfg := config.Load(db)
	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN is required")
	}

	// Classifier absence degrades scoring to neutral rather than
	// blocking startup.
	var predictor scorer.Predictor
	if clf, err := classifier.Load(cfg.ClassifierPath); err != nil {
		log.Printf("classifier unavailable, running in search-only mode: %v", err)
	} else {
		predictor = clf
		log.Printf("classifier loaded from %s, labels: %v", cfg.ClassifierPath, clf.Labels())
	}

	aiClient, err := aicore.NewClient(aicore.FactoryConfig{
		Provider:  cfg.AIProvider,
		Model:     cfg.PrimaryModel,
		GeminiKey: cfg.GeminiKey,
		OpenAIKey: cfg.OpenAIKey,
	})
	if err != nil {
		log.Fatalf("ai client: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb = data.MustRedis(cfg.RedisURL)
	}

	pipe := pipeline.New(
		search.NewClient(),
		scorer.New(predictor),
		verdict.NewSynthesizer(aiClient, cfg.PrimaryModel, cfg.FallbackModel),
		verdict.Extract,
	)

	b, err := bot.New(&cfg, pipe, history.New(db, rdb))
	if err != nil {
		log.Fatalf("bot: %v", err)
	}
	if err := b.Start(); err != nil {
		log.Fatalf("bot start: %v", err)
	}
	log.Printf("cekfakta bot running")

	go func() {
		if err := webserver.New(db).Run(cfg.HTTPAddr); err != nil {
			log.Printf("webserver: %v", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	b.Stop()
}
