package history

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the terminal state of a render.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Record captures one render invocation, successful or not.
type Record struct {
	ID           string
	Mode         string
	PrimaryInput string
	OutputPath   string
	EffectKeys   []string
	ExtraInputs  []string
	CommandLine  string
	Seed         int64
	Status       Status
	// FailureKind carries the runner's failure classification; empty on
	// success.
	FailureKind        string
	RawExitCode        int64
	NormalizedExitCode int64
	StartedAt          time.Time
	FinishedAt         time.Time
}

// NewRecord seeds a record with a fresh identifier and start time.
func NewRecord(mode, primaryInput string) Record {
	return Record{
		ID:           uuid.NewString(),
		Mode:         strings.TrimSpace(mode),
		PrimaryInput: strings.TrimSpace(primaryInput),
		StartedAt:    time.Now().UTC(),
	}
}

// MarkCompleted finalizes the record as a success.
func (r *Record) MarkCompleted(outputPath string) {
	r.Status = StatusCompleted
	r.OutputPath = outputPath
	r.FinishedAt = time.Now().UTC()
}

// MarkFailed finalizes the record with the runner's failure classification.
func (r *Record) MarkFailed(kind string, rawExit, normalizedExit int64) {
	r.Status = StatusFailed
	r.FailureKind = kind
	r.RawExitCode = rawExit
	r.NormalizedExitCode = normalizedExit
	r.FinishedAt = time.Now().UTC()
}
