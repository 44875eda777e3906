package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aleister1102/mailprobe/internal/models"
)

func TestTracker_InitialState(t *testing.T) {
	tracker := NewTracker()
	info := tracker.Info()

	assert.Equal(t, StatusIdle, info.Status)
	assert.Equal(t, 0, info.Total)
	assert.Equal(t, 0, info.Percent())
}

func TestTracker_StartAndRecord(t *testing.T) {
	tracker := NewTracker()
	tracker.Start(4)

	tracker.Record(1, 4, "a@x.com", models.LabelAvailable)
	tracker.Record(2, 4, "b@x.com", models.LabelRegistered)

	info := tracker.Info()
	assert.Equal(t, StatusRunning, info.Status)
	assert.Equal(t, 2, info.Current)
	assert.Equal(t, 4, info.Total)
	assert.Equal(t, 50, info.Percent())
	assert.Equal(t, "b@x.com", info.LastAddress)
	assert.Equal(t, models.LabelRegistered, info.LastLabel)
	assert.Equal(t, 1, info.Counts[models.LabelAvailable])
	assert.Equal(t, 1, info.Counts[models.LabelRegistered])
	assert.False(t, info.StartTime.IsZero())
}

func TestTracker_StartResetsCounts(t *testing.T) {
	tracker := NewTracker()
	tracker.Start(2)
	tracker.Record(1, 2, "a@x.com", models.LabelError)

	tracker.Start(5)

	info := tracker.Info()
	assert.Equal(t, 0, info.Current)
	assert.Equal(t, 5, info.Total)
	assert.Empty(t, info.Counts)
}

func TestTracker_SetStatus(t *testing.T) {
	tracker := NewTracker()
	tracker.Start(1)
	tracker.SetStatus(StatusCancelled)

	assert.Equal(t, StatusCancelled, tracker.Info().Status)
}

func TestTracker_InfoReturnsCopy(t *testing.T) {
	tracker := NewTracker()
	tracker.Start(1)
	tracker.Record(1, 1, "a@x.com", models.LabelAvailable)

	info := tracker.Info()
	info.Counts[models.LabelAvailable] = 99

	assert.Equal(t, 1, tracker.Info().Counts[models.LabelAvailable])
}

func TestInfo_PercentZeroTotal(t *testing.T) {
	info := Info{Current: 3}
	assert.Equal(t, 0, info.Percent())
}
