package main

import "github.com/bwmarrin/discordgo"

// handleCancel requests cancellation of the in-flight batch. The run stops
// after the address currently being checked.
func (b *Bot) handleCancel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	content := "ℹ️ No batch check is running."
	if b.cancelActiveRun() {
		content = "🛑 Cancellation requested. The check stops after the current address."
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}); err != nil {
		b.logger.Error().Err(err).Msg("Failed to respond to cancel command")
	}
}

const helpText = "📖 **How to use this bot**\n\n" +
	"**/check** - attach a `.txt` file with one address per line:\n" +
	"```\nuser@example.com\nother@example.com:password\n```\n" +
	"Lines starting with `#` and blank lines are ignored. Each address is " +
	"checked against the signup form, one at a time, with a delay between checks.\n\n" +
	"**Result legend:**\n" +
	"🔴 Registered - the address already has an account\n" +
	"🟢 Not registered - the address is free\n" +
	"🟡 Invalid - the address was rejected as malformed\n" +
	"⚠️ Error - the check could not complete\n\n" +
	"**/cancel** - stop the running check after the current address\n" +
	"**/status** - bot health and run progress\n"

// handleHelp replies with usage instructions.
func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: helpText},
	}); err != nil {
		b.logger.Error().Err(err).Msg("Failed to respond to help command")
	}
}
