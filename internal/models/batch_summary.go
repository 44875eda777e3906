package models

import (
	"time"

	"github.com/google/uuid"
)

// BatchSummary describes one completed batch run.
type BatchSummary struct {
	RunID        string
	TotalEntries int
	Processed    int
	Counts       map[Label]int
	StartedAt    time.Time
	FinishedAt   time.Time
	Cancelled    bool
	SessionError string
}

// NewBatchSummary creates a summary for a run that is about to start.
func NewBatchSummary(totalEntries int) BatchSummary {
	return BatchSummary{
		RunID:        uuid.NewString(),
		TotalEntries: totalEntries,
		Counts:       make(map[Label]int, len(ResultLabels)),
		StartedAt:    time.Now(),
	}
}

// Finish records the result counts and the completion time.
func (bs *BatchSummary) Finish(rs *ResultSet) {
	for _, label := range ResultLabels {
		bs.Counts[label] = rs.Count(label)
	}
	bs.Processed = rs.Total()
	bs.FinishedAt = time.Now()
}

// Duration returns the wall-clock duration of the run.
func (bs *BatchSummary) Duration() time.Duration {
	if bs.FinishedAt.IsZero() {
		return time.Since(bs.StartedAt)
	}
	return bs.FinishedAt.Sub(bs.StartedAt)
}
