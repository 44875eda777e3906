package config

// NotificationConfig defines the optional Discord webhook used for batch
// completion summaries.
type NotificationConfig struct {
	WebhookURL     string   `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty" validate:"omitempty,url"`
	Username       string   `json:"username,omitempty" yaml:"username,omitempty"`
	MentionRoleIDs []string `json:"mention_role_ids,omitempty" yaml:"mention_role_ids,omitempty"`
}

// NewDefaultNotificationConfig creates a NotificationConfig with default values.
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		Username: "mailprobe",
	}
}
