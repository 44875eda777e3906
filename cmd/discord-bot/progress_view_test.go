package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aleister1102/mailprobe/internal/models"
)

func TestProgressView_Render(t *testing.T) {
	view := newProgressView(15)
	view.Append("a@x.com", models.LabelAvailable)
	view.Append("b@x.com", models.LabelRegistered)

	content := view.Render(2, 4)

	assert.Contains(t, content, "**2/4** (50%)")
	assert.Contains(t, content, "🟢 `a@x.com` - Not registered")
	assert.Contains(t, content, "🔴 `b@x.com` - Registered")
}

func TestProgressView_TruncatesToTail(t *testing.T) {
	view := newProgressView(3)
	for i := 0; i < 5; i++ {
		view.Append(fmt.Sprintf("u%d@x.com", i), models.LabelAvailable)
	}

	content := view.Render(5, 5)

	assert.Contains(t, content, "2 earlier results hidden")
	assert.NotContains(t, content, "u0@x.com")
	assert.NotContains(t, content, "u1@x.com")
	assert.Contains(t, content, "u2@x.com")
	assert.Contains(t, content, "u4@x.com")
}

func TestProgressView_UnknownLabelRendersAsError(t *testing.T) {
	view := newProgressView(5)
	view.Append("a@x.com", models.Label("mystery"))

	assert.Contains(t, view.Render(1, 1), "⚠️ `a@x.com` - Error")
}

func TestStatusEmoji_CoversAllLabels(t *testing.T) {
	labels := append([]models.Label{models.LabelRateLimited}, models.ResultLabels...)
	for _, label := range labels {
		assert.NotEmpty(t, statusEmoji[label], label.String())
		assert.NotEmpty(t, statusText[label], label.String())
	}
}

func TestRenderSummary(t *testing.T) {
	rs := models.NewResultSet()
	rs.Add(models.LabelAvailable, "a@x.com")
	rs.Add(models.LabelRegistered, "b@x.com")
	rs.Add(models.LabelRegistered, "c@x.com")

	summary := models.NewBatchSummary(3)
	summary.Finish(rs)

	content := renderSummary(summary, rs)

	assert.True(t, strings.HasPrefix(content, "✅ **Check complete!**"))
	assert.Contains(t, content, "🟢 Not registered: **1**")
	assert.Contains(t, content, "🔴 Registered: **2**")
	// Empty buckets stay out of the summary.
	assert.NotContains(t, content, "🟡 Invalid")
	assert.Contains(t, content, "📁 Total: **3** addresses")
}

func TestRenderSummary_Cancelled(t *testing.T) {
	rs := models.NewResultSet()
	summary := models.NewBatchSummary(2)
	summary.Cancelled = true
	summary.Finish(rs)

	content := renderSummary(summary, rs)
	assert.True(t, strings.HasPrefix(content, "🛑 **Check cancelled.**"))
}
