package models

import "time"

// Verdict sentinels written when the pipeline short-circuits. FAKTA, HOAKS
// and TIDAK JELAS come out of the model response via verdict extraction.
const (
	VerdictUnknown     = "UNKNOWN"
	VerdictNotFound    = "NOT FOUND"
	VerdictSystemError = "SYSTEM ERROR"
)

// Interaction is one completed fact-check exchange. Append-only: exactly
// one row per inbound message, whichever way the pipeline terminated.
type Interaction struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	TraceID     string `gorm:"size:36;index"`
	UserID      string `gorm:"size:64;not null;index"`
	Username    string `gorm:"size:64"`
	DisplayName string `gorm:"size:128"`
	Question    string `gorm:"type:text;not null"`
	Answer      string `gorm:"type:text"`
	Verdict     string `gorm:"size:32;not null"`
	CreatedAt   time.Time
}

// Setting represents a configuration setting stored in the database
type Setting struct {
	ID     uint8  `gorm:"primaryKey"`
	Name   string `gorm:"size:32;not null"`
	Value  string `gorm:"type:text;not null"`
	Active uint8  `gorm:"not null"`
}
