// Package checker drives a headless browser session through the provider's
// signup form to classify candidate addresses.
package checker

import (
	"context"

	"github.com/aleister1102/mailprobe/internal/models"
)

// Prober classifies a single address. It never fails: probe faults are
// converted to models.LabelError at this boundary.
type Prober interface {
	Check(ctx context.Context, address string) models.Label
}

// Session is a long-lived automation session reused for a whole batch run.
type Session interface {
	Prober
	Close()
}

// SessionFactory opens one automation session per batch run.
type SessionFactory interface {
	Open(ctx context.Context) (Session, error)
}

// ProgressFunc reports one processed entry. current is 1-based. The batch
// loop invokes it synchronously and must not be blocked indefinitely.
type ProgressFunc func(current, total int, address string, label models.Label)
