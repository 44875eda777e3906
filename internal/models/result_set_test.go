package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewResultSet_AllBucketsPresent(t *testing.T) {
	rs := NewResultSet()

	for _, label := range ResultLabels {
		assert.NotNil(t, rs.Lines(label))
		assert.Equal(t, 0, rs.Count(label))
	}
	assert.Equal(t, 0, rs.Total())
}

func TestResultSet_AddAndOrder(t *testing.T) {
	rs := NewResultSet()
	rs.Add(LabelAvailable, "a@x.com")
	rs.Add(LabelRegistered, "b@x.com:pw")
	rs.Add(LabelAvailable, "c@x.com")

	assert.Equal(t, []string{"a@x.com", "c@x.com"}, rs.Lines(LabelAvailable))
	assert.Equal(t, []string{"b@x.com:pw"}, rs.Lines(LabelRegistered))
	assert.Equal(t, 3, rs.Total())
}

func TestResultSet_UnknownLabelFoldsToError(t *testing.T) {
	rs := NewResultSet()
	rs.Add(Label("rate_limited"), "a@x.com")
	rs.Add(Label("bogus"), "b@x.com")

	assert.Equal(t, 2, rs.Count(LabelError))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, rs.Lines(LabelError))
}

func TestLabel_IsBucket(t *testing.T) {
	for _, label := range ResultLabels {
		assert.True(t, label.IsBucket(), label.String())
	}
	assert.False(t, LabelRateLimited.IsBucket())
	assert.False(t, Label("other").IsBucket())
}

func TestBatchSummary_Finish(t *testing.T) {
	rs := NewResultSet()
	rs.Add(LabelRegistered, "a@x.com")
	rs.Add(LabelRegistered, "b@x.com")
	rs.Add(LabelError, "c@x.com")

	summary := NewBatchSummary(3)
	summary.Finish(rs)

	assert.Equal(t, 3, summary.TotalEntries)
	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 2, summary.Counts[LabelRegistered])
	assert.Equal(t, 0, summary.Counts[LabelAvailable])
	assert.Equal(t, 1, summary.Counts[LabelError])
	assert.NotEmpty(t, summary.RunID)
	assert.False(t, summary.FinishedAt.IsZero())
	assert.GreaterOrEqual(t, summary.Duration(), time.Duration(0))
}
