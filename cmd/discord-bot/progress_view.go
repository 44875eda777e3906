package main

import (
	"fmt"
	"strings"

	"github.com/aleister1102/mailprobe/internal/models"
)

var statusEmoji = map[models.Label]string{
	models.LabelRegistered:  "🔴",
	models.LabelAvailable:   "🟢",
	models.LabelInvalid:     "🟡",
	models.LabelError:       "⚠️",
	models.LabelRateLimited: "⏳",
}

var statusText = map[models.Label]string{
	models.LabelRegistered:  "Registered",
	models.LabelAvailable:   "Not registered",
	models.LabelInvalid:     "Invalid email",
	models.LabelError:       "Error",
	models.LabelRateLimited: "Rate limited",
}

// progressView accumulates per-address result lines and renders the
// progress message body. Only the tail of the result list is shown so the
// message stays under Discord's content limit.
type progressView struct {
	maxVisible int
	lines      []string
}

func newProgressView(maxVisible int) *progressView {
	return &progressView{maxVisible: maxVisible}
}

func (v *progressView) Append(address string, label models.Label) {
	emoji, ok := statusEmoji[label]
	if !ok {
		emoji = statusEmoji[models.LabelError]
	}
	text, ok := statusText[label]
	if !ok {
		text = statusText[models.LabelError]
	}
	v.lines = append(v.lines, fmt.Sprintf("%s `%s` - %s", emoji, address, text))
}

func (v *progressView) Render(current, total int) string {
	var sb strings.Builder

	percent := 0
	if total > 0 {
		percent = current * 100 / total
	}
	sb.WriteString(fmt.Sprintf("⏳ Checking... **%d/%d** (%d%%)\n\n", current, total, percent))

	visible := v.lines
	if hidden := len(visible) - v.maxVisible; hidden > 0 {
		sb.WriteString(fmt.Sprintf("_... %d earlier results hidden_\n", hidden))
		visible = visible[hidden:]
	}
	sb.WriteString(strings.Join(visible, "\n"))

	return sb.String()
}
