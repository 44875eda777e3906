package checker

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/mailprobe/internal/common/errorwrapper"
	"github.com/aleister1102/mailprobe/internal/config"
	"github.com/aleister1102/mailprobe/internal/models"
)

// Jitter added to the base delay between items, uniform in [0.5, 1.5)
// seconds. Randomized pacing looks less like a scripted client.
const (
	jitterFloorSecs = 0.5
	jitterSpanSecs  = 1.0
)

// BatchChecker runs the classifier over an ordered entry list using one
// long-lived session, sequentially, reporting progress and pacing requests.
type BatchChecker struct {
	cfg     config.CheckerConfig
	factory SessionFactory
	logger  zerolog.Logger
}

// NewBatchChecker creates a new batch checker.
func NewBatchChecker(cfg config.CheckerConfig, factory SessionFactory, logger zerolog.Logger) *BatchChecker {
	return &BatchChecker{
		cfg:     cfg,
		factory: factory,
		logger:  logger.With().Str("component", "BatchChecker").Logger(),
	}
}

// Run processes all entries in order with a single automation session and
// returns the categorized result set. It never returns an error: a session
// that cannot be opened yields empty buckets plus a log entry, and
// cancellation mid-batch yields whatever was accumulated so far. The session
// is always closed on exit.
func (bc *BatchChecker) Run(ctx context.Context, entries []models.Entry, onProgress ProgressFunc) (*models.ResultSet, models.BatchSummary) {
	results := models.NewResultSet()
	summary := models.NewBatchSummary(len(entries))

	bc.logger.Info().
		Str("run_id", summary.RunID).
		Int("total", len(entries)).
		Msg("Starting batch run")

	session, err := bc.factory.Open(ctx)
	if err != nil {
		err = errorwrapper.NewError("%w: %w", errorwrapper.ErrSessionUnavailable, err)
		bc.logger.Error().Err(err).Str("run_id", summary.RunID).Msg("Failed to open automation session")
		summary.SessionError = err.Error()
		summary.Finish(results)
		return results, summary
	}
	defer session.Close()

	total := len(entries)
	for i, entry := range entries {
		if ctx.Err() != nil {
			bc.logger.Info().
				Str("run_id", summary.RunID).
				Int("processed", i).
				Int("total", total).
				Msg("Batch run cancelled")
			summary.Cancelled = true
			break
		}

		label := session.Check(ctx, entry.Address)
		results.Add(label, entry.RawLine)

		bc.logger.Info().
			Int("current", i+1).
			Int("total", total).
			Str("address", entry.Address).
			Str("label", label.String()).
			Msg("Address checked")

		if onProgress != nil {
			onProgress(i+1, total, entry.Address, label)
		}

		if i < total-1 {
			bc.pause(ctx)
		}
	}

	summary.Finish(results)

	bc.logger.Info().
		Str("run_id", summary.RunID).
		Int("registered", results.Count(models.LabelRegistered)).
		Int("available", results.Count(models.LabelAvailable)).
		Int("invalid", results.Count(models.LabelInvalid)).
		Int("error", results.Count(models.LabelError)).
		Dur("duration", summary.Duration()).
		Msg("Batch run completed")

	return results, summary
}

// pause sleeps for the base delay plus jitter, or until cancellation.
// A base delay of zero disables pacing.
func (bc *BatchChecker) pause(ctx context.Context) {
	base := bc.cfg.BaseDelay()
	if base <= 0 {
		return
	}

	jitter := time.Duration((jitterFloorSecs + rand.Float64()*jitterSpanSecs) * float64(time.Second))
	select {
	case <-time.After(base + jitter):
	case <-ctx.Done():
	}
}
