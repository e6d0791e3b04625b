// Package history appends completed interactions to the durable store.
// Writes are observability-only: a failure is logged and swallowed so it
// can never block the user-facing reply.
package history

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sentra-id/cekfakta/src/data"
	"github.com/sentra-id/cekfakta/src/models"
)

type Logger struct {
	db  *gorm.DB
	rdb *redis.Client
}

// New builds the logger. rdb may be nil; the analytics stream is then
// skipped.
func New(db *gorm.DB, rdb *redis.Client) *Logger {
	return &Logger{db: db, rdb: rdb}
}

// Append writes exactly one row for a completed interaction, plus a
// best-effort copy onto the Redis analytics stream.
func (l *Logger) Append(rec models.Interaction) {
	if l.db == nil {
		log.Printf("history: no store configured, dropping record trace=%s", rec.TraceID)
		return
	}

	if err := l.db.Create(&rec).Error; err != nil {
		log.Printf("history: append failed trace=%s: %v", rec.TraceID, err)
		return
	}

	if l.rdb == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload := map[string]interface{}{
		"trace_id": rec.TraceID,
		"user_id":  rec.UserID,
		"username": rec.Username,
		"verdict":  rec.Verdict,
		"at":       rec.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := data.PublishInteraction(ctx, l.rdb, payload); err != nil {
		log.Printf("history: stream publish failed trace=%s: %v", rec.TraceID, err)
	}
}
