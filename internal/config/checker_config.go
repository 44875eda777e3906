package config

import "time"

// CheckerConfig defines the per-address probe timing and the signup endpoint.
// The step timeouts mirror the provider's observed client-side validation
// behavior; changing them changes classification reliability.
type CheckerConfig struct {
	SignupURL               string  `json:"signup_url,omitempty" yaml:"signup_url,omitempty" validate:"omitempty,url"`
	NavigationTimeoutSecs   int     `json:"navigation_timeout_secs,omitempty" yaml:"navigation_timeout_secs,omitempty" validate:"omitempty,min=1"`
	NavigationSettleMs      int     `json:"navigation_settle_ms,omitempty" yaml:"navigation_settle_ms,omitempty" validate:"omitempty,min=0"`
	InputVisibleTimeoutSecs int     `json:"input_visible_timeout_secs,omitempty" yaml:"input_visible_timeout_secs,omitempty" validate:"omitempty,min=1"`
	TypeDelayMs             int     `json:"type_delay_ms,omitempty" yaml:"type_delay_ms,omitempty" validate:"omitempty,min=0"`
	TypeSettleMs            int     `json:"type_settle_ms,omitempty" yaml:"type_settle_ms,omitempty" validate:"omitempty,min=0"`
	BlurSettleMs            int     `json:"blur_settle_ms,omitempty" yaml:"blur_settle_ms,omitempty" validate:"omitempty,min=0"`
	BaseDelaySecs           float64 `json:"base_delay_secs,omitempty" yaml:"base_delay_secs,omitempty" validate:"omitempty,min=0"`
}

// NewDefaultCheckerConfig creates a CheckerConfig with default values.
func NewDefaultCheckerConfig() CheckerConfig {
	return CheckerConfig{
		SignupURL:               DefaultSignupURL,
		NavigationTimeoutSecs:   DefaultNavigationTimeoutSecs,
		NavigationSettleMs:      DefaultNavigationSettleMs,
		InputVisibleTimeoutSecs: DefaultInputVisibleTimeoutSecs,
		TypeDelayMs:             DefaultTypeDelayMs,
		TypeSettleMs:            DefaultTypeSettleMs,
		BlurSettleMs:            DefaultBlurSettleMs,
		BaseDelaySecs:           DefaultBaseDelaySecs,
	}
}

// NavigationTimeout returns the navigation wait bound as a duration.
func (c CheckerConfig) NavigationTimeout() time.Duration {
	return time.Duration(c.NavigationTimeoutSecs) * time.Second
}

// NavigationSettle returns the post-navigation settle delay.
func (c CheckerConfig) NavigationSettle() time.Duration {
	return time.Duration(c.NavigationSettleMs) * time.Millisecond
}

// InputVisibleTimeout returns the email-input visibility wait bound.
func (c CheckerConfig) InputVisibleTimeout() time.Duration {
	return time.Duration(c.InputVisibleTimeoutSecs) * time.Second
}

// TypeDelay returns the per-character typing delay.
func (c CheckerConfig) TypeDelay() time.Duration {
	return time.Duration(c.TypeDelayMs) * time.Millisecond
}

// TypeSettle returns the pause after typing completes.
func (c CheckerConfig) TypeSettle() time.Duration {
	return time.Duration(c.TypeSettleMs) * time.Millisecond
}

// BlurSettle returns the wait for the provider's async validation after blur.
func (c CheckerConfig) BlurSettle() time.Duration {
	return time.Duration(c.BlurSettleMs) * time.Millisecond
}

// BaseDelay returns the inter-item pacing delay before jitter.
func (c CheckerConfig) BaseDelay() time.Duration {
	return time.Duration(c.BaseDelaySecs * float64(time.Second))
}
