// Package progress keeps shared run-state for display by the front ends.
package progress

import (
	"sync"
	"time"

	"github.com/aleister1102/mailprobe/internal/models"
)

// Status is the lifecycle state of a batch run.
type Status string

const (
	StatusIdle      Status = "IDLE"
	StatusRunning   Status = "RUNNING"
	StatusComplete  Status = "COMPLETE"
	StatusCancelled Status = "CANCELLED"
	StatusError     Status = "ERROR"
)

// Info is a point-in-time snapshot of a batch run.
type Info struct {
	Status         Status
	Current        int
	Total          int
	LastAddress    string
	LastLabel      models.Label
	Counts         map[models.Label]int
	StartTime      time.Time
	LastUpdateTime time.Time
	EstimatedETA   time.Duration
}

// Percent returns completion as 0-100.
func (i Info) Percent() int {
	if i.Total == 0 {
		return 0
	}
	return i.Current * 100 / i.Total
}

// Tracker is a mutex-guarded progress indicator updated from the batch
// progress callback and rendered by the CLI and the bot.
type Tracker struct {
	mu   sync.RWMutex
	info Info
}

// NewTracker creates an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{
		info: Info{
			Status: StatusIdle,
			Counts: make(map[models.Label]int),
		},
	}
}

// Start marks the run as running with the given total.
func (t *Tracker) Start(total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.info = Info{
		Status:    StatusRunning,
		Total:     total,
		Counts:    make(map[models.Label]int),
		StartTime: time.Now(),
	}
}

// Record registers one processed entry.
func (t *Tracker) Record(current, total int, address string, label models.Label) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.info.Current = current
	t.info.Total = total
	t.info.LastAddress = address
	t.info.LastLabel = label
	t.info.Counts[label]++
	t.info.LastUpdateTime = time.Now()
	t.updateETA()
}

// SetStatus sets the terminal status of the run.
func (t *Tracker) SetStatus(status Status) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.info.Status = status
	t.info.LastUpdateTime = time.Now()
}

// Info returns a copy of the current snapshot.
func (t *Tracker) Info() Info {
	t.mu.RLock()
	defer t.mu.RUnlock()

	info := t.info
	info.Counts = make(map[models.Label]int, len(t.info.Counts))
	for label, count := range t.info.Counts {
		info.Counts[label] = count
	}
	return info
}

// updateETA estimates remaining time from the average per-item duration.
// Caller must hold the lock.
func (t *Tracker) updateETA() {
	if t.info.Current == 0 || t.info.Total == 0 {
		t.info.EstimatedETA = 0
		return
	}

	elapsed := time.Since(t.info.StartTime)
	perItem := elapsed / time.Duration(t.info.Current)
	remaining := t.info.Total - t.info.Current
	t.info.EstimatedETA = perItem * time.Duration(remaining)
}
