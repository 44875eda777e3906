package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"github.com/aleister1102/mailprobe/internal/common/errorwrapper"
	"github.com/aleister1102/mailprobe/internal/models"
	"github.com/aleister1102/mailprobe/internal/notifier"
	"github.com/aleister1102/mailprobe/internal/parser"
	"github.com/aleister1102/mailprobe/internal/progress"
	"github.com/aleister1102/mailprobe/internal/reporter"
)

// handleCheck downloads the attached entry file, runs the batch with a
// live-edited progress message, and uploads the categorized result files.
// It blocks for the duration of the run; discordgo dispatches each handler
// on its own goroutine.
func (b *Bot) handleCheck(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		b.logger.Error().Err(err).Msg("Failed to defer interaction response")
		return
	}

	att, err := b.resolveAttachment(i)
	if err != nil {
		b.followupError(s, i, err.Error())
		return
	}

	if !strings.HasSuffix(strings.ToLower(att.Filename), ".txt") {
		b.followupError(s, i, "❌ The file must be a `.txt` file with one address per line.")
		return
	}
	if att.Size > b.cfg.BotConfig.MaxAttachmentSizeMB*1024*1024 {
		b.followupError(s, i, fmt.Sprintf("❌ The file is too large (max %d MB).", b.cfg.BotConfig.MaxAttachmentSizeMB))
		return
	}

	text, err := b.downloadAttachment(att.URL)
	if err != nil {
		b.logger.Error().Err(err).Str("filename", att.Filename).Msg("Failed to download attachment")
		b.followupError(s, i, "❌ Could not download the attachment, please try again.")
		return
	}

	entries := parser.Parse(text)
	if len(entries) == 0 {
		b.followupError(s, i, "❌ No valid addresses found in the file.\n\nExpected format:\n`email@domain.com` or\n`email@domain.com:password`")
		return
	}

	ctx, err := b.beginRun()
	if err != nil {
		b.followupError(s, i, "⚠️ "+err.Error())
		return
	}
	defer b.endRun()

	total := len(entries)
	b.tracker.Start(total)
	b.logger.Info().Int("entries", total).Str("filename", att.Filename).Msg("Batch check requested")

	statusMsg, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: fmt.Sprintf("✅ Found **%d** addresses.\n⏳ Starting checks...\n\n`Progress: 0/%d (0%%)`", total, total),
	})
	if err != nil {
		b.logger.Error().Err(err).Msg("Failed to create progress message")
		statusMsg = nil
	}

	view := newProgressView(b.cfg.BotConfig.MaxVisibleResults)
	// Discord edits are throttled, but the final update always goes out.
	editLimiter := rate.NewLimiter(rate.Every(time.Duration(b.cfg.BotConfig.ProgressEditMs)*time.Millisecond), 1)

	onProgress := func(current, total int, address string, label models.Label) {
		b.tracker.Record(current, total, address, label)
		view.Append(address, label)

		if statusMsg == nil {
			return
		}
		if current != total && !editLimiter.Allow() {
			return
		}
		content := view.Render(current, total)
		if _, err := s.FollowupMessageEdit(i.Interaction, statusMsg.ID, &discordgo.WebhookEdit{Content: &content}); err != nil {
			b.logger.Warn().Err(err).Msg("Failed to edit progress message")
		}
	}

	results, summary := b.batchChecker.Run(ctx, entries, onProgress)

	switch {
	case summary.Cancelled:
		b.tracker.SetStatus(progress.StatusCancelled)
	case summary.SessionError != "":
		b.tracker.SetStatus(progress.StatusError)
	default:
		b.tracker.SetStatus(progress.StatusComplete)
	}

	if statusMsg != nil {
		content := renderSummary(summary, results)
		if _, err := s.FollowupMessageEdit(i.Interaction, statusMsg.ID, &discordgo.WebhookEdit{Content: &content}); err != nil {
			b.logger.Warn().Err(err).Msg("Failed to edit summary message")
		}
	}

	for _, file := range reporter.BuildFiles(results, time.Now()) {
		_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: file.Caption,
			Files: []*discordgo.File{{
				Name:        file.Name,
				ContentType: "text/plain",
				Reader:      bytes.NewReader(file.Content),
			}},
		})
		if err != nil {
			b.logger.Error().Err(err).Str("file", file.Name).Msg("Failed to upload result file")
		}
	}

	if b.cfg.NotificationConfig.WebhookURL != "" {
		discordNotifier := notifier.NewDiscordNotifier(b.logger, b.httpClient)
		payload := notifier.FormatBatchSummary(summary, b.cfg.NotificationConfig)
		// The run context may already be cancelled; the summary still goes out.
		if err := discordNotifier.SendNotification(context.Background(), b.cfg.NotificationConfig.WebhookURL, payload); err != nil {
			b.logger.Error().Err(err).Msg("Failed to send summary notification")
		}
	}
}

// resolveAttachment extracts the attachment referenced by the command's
// file option.
func (b *Bot) resolveAttachment(i *discordgo.InteractionCreate) (*discordgo.MessageAttachment, error) {
	data := i.ApplicationCommandData()
	for _, opt := range data.Options {
		if opt.Type != discordgo.ApplicationCommandOptionAttachment {
			continue
		}
		id, ok := opt.Value.(string)
		if !ok {
			continue
		}
		if att, ok := data.Resolved.Attachments[id]; ok {
			return att, nil
		}
	}
	return nil, errorwrapper.NewError("❌ Attach a .txt file to the command.")
}

// downloadAttachment fetches the attachment body from Discord's CDN.
func (b *Bot) downloadAttachment(url string) (string, error) {
	resp, err := b.httpClient.Get(url)
	if err != nil {
		return "", errorwrapper.WrapError(err, "attachment download failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", errorwrapper.NewError("attachment download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to read attachment body")
	}
	return string(data), nil
}

// followupError sends an error reply for a deferred interaction.
func (b *Bot) followupError(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{Content: content}); err != nil {
		b.logger.Error().Err(err).Msg("Failed to send follow-up message")
	}
}

// renderSummary renders the final summary message after a run.
func renderSummary(summary models.BatchSummary, results *models.ResultSet) string {
	var sb strings.Builder

	switch {
	case summary.Cancelled:
		sb.WriteString("🛑 **Check cancelled.**\n\n")
	case summary.SessionError != "":
		sb.WriteString("⚠️ **Could not start the browser session.**\n\n")
	default:
		sb.WriteString("✅ **Check complete!**\n\n")
	}

	sb.WriteString("📊 **Results:**\n")
	sb.WriteString(fmt.Sprintf("🟢 Not registered: **%d**\n", results.Count(models.LabelAvailable)))
	sb.WriteString(fmt.Sprintf("🔴 Registered: **%d**\n", results.Count(models.LabelRegistered)))
	if n := results.Count(models.LabelInvalid); n > 0 {
		sb.WriteString(fmt.Sprintf("🟡 Invalid: **%d**\n", n))
	}
	if n := results.Count(models.LabelError); n > 0 {
		sb.WriteString(fmt.Sprintf("⚠️ Error: **%d**\n", n))
	}
	sb.WriteString(fmt.Sprintf("\n📁 Total: **%d** addresses", summary.TotalEntries))

	return sb.String()
}
