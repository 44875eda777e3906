package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/aleister1102/mailprobe/internal/config"
	"github.com/aleister1102/mailprobe/internal/models"
)

// Embed colors
const (
	ColorGreen  = 0x2ECC71
	ColorRed    = 0xE74C3C
	ColorOrange = 0xE67E22
)

// FormatBatchSummary renders a completed batch run as a webhook payload.
func FormatBatchSummary(summary models.BatchSummary, cfg config.NotificationConfig) models.DiscordMessagePayload {
	title := "Batch check completed"
	color := ColorGreen
	if summary.Cancelled {
		title = "Batch check cancelled"
		color = ColorOrange
	} else if summary.SessionError != "" {
		title = "Batch check failed to start"
		color = ColorRed
	} else if summary.Counts[models.LabelError] > 0 {
		color = ColorOrange
	}

	embedBuilder := NewDiscordEmbedBuilder().
		WithTitle(title).
		WithColor(color).
		WithTimestamp(summary.FinishedAt).
		WithFooter(fmt.Sprintf("run %s", summary.RunID)).
		AddField("Total", fmt.Sprintf("%d", summary.TotalEntries), true).
		AddField("Registered", fmt.Sprintf("%d", summary.Counts[models.LabelRegistered]), true).
		AddField("Available", fmt.Sprintf("%d", summary.Counts[models.LabelAvailable]), true).
		AddField("Invalid", fmt.Sprintf("%d", summary.Counts[models.LabelInvalid]), true).
		AddField("Error", fmt.Sprintf("%d", summary.Counts[models.LabelError]), true).
		AddField("Duration", summary.Duration().Round(time.Second).String(), true)

	if summary.SessionError != "" {
		embedBuilder = embedBuilder.WithDescription(summary.SessionError)
	}

	payloadBuilder := NewDiscordMessagePayloadBuilder().
		WithUsername(cfg.Username).
		AddEmbed(embedBuilder.Build())

	if len(cfg.MentionRoleIDs) > 0 {
		mentions := make([]string, 0, len(cfg.MentionRoleIDs))
		for _, roleID := range cfg.MentionRoleIDs {
			mentions = append(mentions, fmt.Sprintf("<@&%s>", roleID))
		}
		payloadBuilder = payloadBuilder.
			WithContent(strings.Join(mentions, " ")).
			WithAllowedMentions(models.AllowedMentions{Parse: []string{"roles"}, Roles: cfg.MentionRoleIDs})
	}

	return payloadBuilder.Build()
}
