package main

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Command definitions
var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "check",
		Description: "Check which addresses in a .txt file are already registered",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionAttachment,
				Name:        "file",
				Description: "Text file with one address per line (email or email:password)",
				Required:    true,
			},
		},
	},
	{
		Name:        "cancel",
		Description: "Cancel the batch check currently in progress",
	},
	{
		Name:        "status",
		Description: "Show bot status and current run progress",
	},
	{
		Name:        "help",
		Description: "Show usage instructions",
	},
}

// registerCommands registers slash commands with Discord
func registerCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

// cleanupCommands removes registered slash commands on shutdown
func cleanupCommands(s *discordgo.Session, guildID string, logger zerolog.Logger) {
	registered, err := s.ApplicationCommands(s.State.User.ID, guildID)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to list commands for cleanup")
		return
	}

	for _, cmd := range registered {
		if err := s.ApplicationCommandDelete(s.State.User.ID, guildID, cmd.ID); err != nil {
			logger.Warn().Err(err).Str("command", cmd.Name).Msg("Failed to delete command")
		}
	}
}
