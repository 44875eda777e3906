package models

// Label is the classification assigned to a single address after probing the
// provider's signup form.
type Label string

const (
	// LabelRegistered means the provider reported the address as taken.
	LabelRegistered Label = "registered"
	// LabelAvailable means the provider accepted the address.
	LabelAvailable Label = "available"
	// LabelInvalid means the provider rejected the address format.
	LabelInvalid Label = "invalid"
	// LabelError is the catch-all for ambiguous page states and probe faults.
	LabelError Label = "error"
	// LabelRateLimited is reserved for provider throttling. The classifier
	// never emits it; the display layer still knows how to render it.
	LabelRateLimited Label = "rate_limited"
)

// ResultLabels are the labels the batch checker buckets results under, in
// display order.
var ResultLabels = []Label{LabelRegistered, LabelAvailable, LabelInvalid, LabelError}

// IsBucket reports whether the label is one of the four result buckets.
func (l Label) IsBucket() bool {
	switch l {
	case LabelRegistered, LabelAvailable, LabelInvalid, LabelError:
		return true
	default:
		return false
	}
}

// String returns the string representation of the label.
func (l Label) String() string {
	return string(l)
}
