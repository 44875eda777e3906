// Package classify decides the outcome of one signup-form probe from the
// page state left behind by the provider's client-side validation.
package classify

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aleister1102/mailprobe/internal/models"
)

// Phrases the provider renders after validating an address. Matching is
// case-insensitive over the full page content.
var (
	registeredPhrases = []string{"already associated", "already been taken"}
	invalidPhrases    = []string{"not a valid email", "not valid"}
)

// successIndicatorSelector matches the checkmark icon / success-colored
// elements the provider shows next to an accepted address.
const successIndicatorSelector = "svg.color-fg-success, .color-fg-success, [class*='success'] svg, .octicon-check"

// PageState is a snapshot of the signup page after the validation settle.
type PageState struct {
	HTML string
	// PasswordVisible reports whether a password input was present and
	// visible. The provider only reveals this field after accepting the
	// email, so it is a secondary acceptance signal.
	PasswordVisible bool
}

// Page maps a page snapshot to exactly one label. Rule order is load-bearing:
// a stale success icon can coexist with fresh "already taken" text, and the
// text must win.
func Page(state PageState) models.Label {
	content := strings.ToLower(state.HTML)

	if containsAny(content, registeredPhrases) {
		return models.LabelRegistered
	}

	if hasSuccessIndicator(state.HTML) {
		return models.LabelAvailable
	}

	if state.PasswordVisible {
		return models.LabelAvailable
	}

	if containsAny(content, invalidPhrases) {
		return models.LabelInvalid
	}

	return models.LabelError
}

func containsAny(content string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(content, phrase) {
			return true
		}
	}
	return false
}

func hasSuccessIndicator(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	return doc.Find(successIndicatorSelector).Length() > 0
}
