package config

import "os"

// BotConfig defines the Discord bot front end.
type BotConfig struct {
	Token               string `json:"token,omitempty" yaml:"token,omitempty"`
	GuildID             string `json:"guild_id,omitempty" yaml:"guild_id,omitempty"`
	CommandsPerMinute   int    `json:"commands_per_minute,omitempty" yaml:"commands_per_minute,omitempty" validate:"omitempty,min=1"`
	BurstLimit          int    `json:"burst_limit,omitempty" yaml:"burst_limit,omitempty" validate:"omitempty,min=1"`
	ProgressEditMs      int    `json:"progress_edit_ms,omitempty" yaml:"progress_edit_ms,omitempty" validate:"omitempty,min=0"`
	MaxVisibleResults   int    `json:"max_visible_results,omitempty" yaml:"max_visible_results,omitempty" validate:"omitempty,min=1"`
	MaxAttachmentSizeMB int    `json:"max_attachment_size_mb,omitempty" yaml:"max_attachment_size_mb,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultBotConfig creates a BotConfig with default values.
func NewDefaultBotConfig() BotConfig {
	return BotConfig{
		CommandsPerMinute:   DefaultBotCommandsPerMinute,
		BurstLimit:          DefaultBotBurstLimit,
		ProgressEditMs:      DefaultBotProgressEditMs,
		MaxVisibleResults:   DefaultBotMaxVisibleResults,
		MaxAttachmentSizeMB: DefaultBotMaxAttachmentSizeMB,
	}
}

// ResolveToken returns the bot token, preferring the DISCORD_BOT_TOKEN
// environment variable over the config file.
func (c BotConfig) ResolveToken() string {
	if token := os.Getenv("DISCORD_BOT_TOKEN"); token != "" {
		return token
	}
	return c.Token
}
