package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/mailprobe/internal/models"
)

func TestParse_PlainAddresses(t *testing.T) {
	entries := Parse("one@example.com\ntwo@example.com\n")

	require.Len(t, entries, 2)
	assert.Equal(t, "one@example.com", entries[0].Address)
	assert.Equal(t, "one@example.com", entries[0].RawLine)
	assert.Equal(t, "two@example.com", entries[1].Address)
}

func TestParse_CredentialLines(t *testing.T) {
	entries := Parse("user@example.com:hunter2")

	require.Len(t, entries, 1)
	assert.Equal(t, "user@example.com", entries[0].Address)
	// The raw line keeps the password so result files echo input unchanged.
	assert.Equal(t, "user@example.com:hunter2", entries[0].RawLine)
}

func TestParse_SplitsOnFirstColonOnly(t *testing.T) {
	entries := Parse("user@example.com:pass:with:colons")

	require.Len(t, entries, 1)
	assert.Equal(t, "user@example.com", entries[0].Address)
	assert.Equal(t, "user@example.com:pass:with:colons", entries[0].RawLine)
}

func TestParse_SkipsBlankAndCommentLines(t *testing.T) {
	text := "# exported list\n\n   \nuser@example.com\n# trailing comment"

	entries := Parse(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "user@example.com", entries[0].Address)
}

func TestParse_SkipsLinesWithoutAtSign(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"bare word", "notanemail"},
		{"colon but no at", "username:password"},
		{"at only after colon", "username:pass@word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Parse(tt.line))
		})
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	entries := Parse("  user@example.com  \n\t other@example.com : pw ")

	require.Len(t, entries, 2)
	assert.Equal(t, "user@example.com", entries[0].Address)
	assert.Equal(t, "other@example.com", entries[1].Address)
}

func TestParse_PreservesInputOrderAndDuplicates(t *testing.T) {
	text := "b@example.com\na@example.com\nb@example.com"

	entries := Parse(text)

	require.Len(t, entries, 3)
	addresses := make([]string, len(entries))
	for i, e := range entries {
		addresses[i] = e.Address
	}
	assert.Equal(t, []string{"b@example.com", "a@example.com", "b@example.com"}, addresses)
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\n\n"))
}

func TestParseReader(t *testing.T) {
	entries, err := ParseReader(strings.NewReader("user@example.com:pw\nbad line\n"))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.Entry{Address: "user@example.com", RawLine: "user@example.com:pw"}, entries[0])
}
