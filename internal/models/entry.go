package models

// Entry is one candidate address parsed from user input. RawLine keeps the
// original line (including any ":password" suffix) so result files can echo
// it back unchanged.
type Entry struct {
	Address string
	RawLine string
}
