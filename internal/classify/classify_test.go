package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aleister1102/mailprobe/internal/models"
)

const (
	registeredHTML = `<html><body>
		<div class="error">Email is invalid or already associated with an account.</div>
	</body></html>`

	takenHTML = `<html><body>
		<p>email has already been taken</p>
	</body></html>`

	successIconHTML = `<html><body>
		<input type="email" value="free@example.com">
		<svg class="octicon octicon-check color-fg-success"></svg>
	</body></html>`

	invalidHTML = `<html><body>
		<div class="form-error">Email is not a valid email address.</div>
	</body></html>`

	neutralHTML = `<html><body><input type="email"></body></html>`
)

func TestPage_RegisteredText(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"already associated", registeredHTML},
		{"already been taken", takenHTML},
		{"mixed case", `<div>Already Associated with another account</div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := Page(PageState{HTML: tt.html})
			assert.Equal(t, models.LabelRegistered, label)
		})
	}
}

func TestPage_SuccessIndicator(t *testing.T) {
	label := Page(PageState{HTML: successIconHTML})
	assert.Equal(t, models.LabelAvailable, label)
}

func TestPage_SuccessIndicatorVariants(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"fg-success class", `<span class="color-fg-success">looks good</span>`},
		{"svg inside success container", `<div class="input-success"><svg></svg></div>`},
		{"octicon check", `<svg class="octicon-check"></svg>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := Page(PageState{HTML: tt.html})
			assert.Equal(t, models.LabelAvailable, label)
		})
	}
}

// A stale success icon can survive in the DOM next to fresh "already taken"
// text. The registered text must win.
func TestPage_RegisteredTextBeatsSuccessIcon(t *testing.T) {
	html := `<html><body>
		<svg class="octicon-check color-fg-success"></svg>
		<div>email has already been taken</div>
	</body></html>`

	label := Page(PageState{HTML: html})
	assert.Equal(t, models.LabelRegistered, label)
}

func TestPage_PasswordVisibleFallback(t *testing.T) {
	label := Page(PageState{HTML: neutralHTML, PasswordVisible: true})
	assert.Equal(t, models.LabelAvailable, label)
}

func TestPage_InvalidText(t *testing.T) {
	label := Page(PageState{HTML: invalidHTML})
	assert.Equal(t, models.LabelInvalid, label)
}

// The password field outranks the invalid text: a visible password input
// means the provider accepted the address, whatever stale copy remains.
func TestPage_PasswordVisibleBeatsInvalidText(t *testing.T) {
	label := Page(PageState{HTML: invalidHTML, PasswordVisible: true})
	assert.Equal(t, models.LabelAvailable, label)
}

func TestPage_AmbiguousStateIsError(t *testing.T) {
	label := Page(PageState{HTML: neutralHTML})
	assert.Equal(t, models.LabelError, label)
}

func TestPage_EmptyHTML(t *testing.T) {
	label := Page(PageState{})
	assert.Equal(t, models.LabelError, label)
}
