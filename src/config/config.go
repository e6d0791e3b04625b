package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/sentra-id/cekfakta/src/data"
)

type Config struct {
	DiscordToken string
	MySQLDSN     string
	RedisURL     string
	HTTPAddr     string

	AIProvider    string
	GeminiKey     string
	OpenAIKey     string
	PrimaryModel  string
	FallbackModel string

	ClassifierPath  string
	PipelineTimeout time.Duration
}

// LoadEnv reads .env (if present) plus the environment. Only the MySQL
// DSN is needed this early; the rest of the config loads after the DB
// settings table is available.
func LoadEnv() string {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: skipping .env: %v", err)
	}
	return os.Getenv("MYSQL_DSN")
}

// Load resolves configuration, environment first with the settings table
// as fallback, so container deployments can override anything.
func Load(db *gorm.DB) Config {
	if err := data.LoadSettings(db); err != nil {
		log.Printf("config: failed to load settings table: %v", err)
	}

	timeout := 5 * time.Minute
	if raw := get("pipeline_timeout", "PIPELINE_TIMEOUT", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		} else {
			log.Printf("config: invalid PIPELINE_TIMEOUT %q: %v", raw, err)
		}
	}

	return Config{
		DiscordToken: get("discord_token", "DISCORD_TOKEN", ""),
		MySQLDSN:     os.Getenv("MYSQL_DSN"),
		RedisURL:     get("redis_url", "REDIS_URL", ""),
		HTTPAddr:     get("http_addr", "HTTP_ADDR", ":8090"),

		AIProvider:    get("ai_provider", "AI_PROVIDER", "gemini"),
		GeminiKey:     get("gemini_api_key", "GEMINI_API_KEY", ""),
		OpenAIKey:     get("openai_api_key", "OPENAI_API_KEY", ""),
		PrimaryModel:  get("ai_model_primary", "AI_MODEL_PRIMARY", "gemini-2.0-flash"),
		FallbackModel: get("ai_model_fallback", "AI_MODEL_FALLBACK", "gemini-2.0-flash-lite"),

		ClassifierPath:  get("classifier_path", "CLASSIFIER_PATH", "artifacts/hoax-classifier.json"),
		PipelineTimeout: timeout,
	}
}

// get resolves one value: env var wins, then the settings table, then
// the default.
func get(settingName, envKey, def string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if v := data.GetSetting(settingName); v != "" {
		return v
	}
	return def
}
