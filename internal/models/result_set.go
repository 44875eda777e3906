package models

// ResultSet accumulates the raw lines of one batch run, bucketed by label.
// Bucket order is insertion order, which equals processing order.
type ResultSet struct {
	buckets map[Label][]string
}

// NewResultSet creates a ResultSet with all four buckets present but empty.
func NewResultSet() *ResultSet {
	buckets := make(map[Label][]string, len(ResultLabels))
	for _, label := range ResultLabels {
		buckets[label] = []string{}
	}
	return &ResultSet{buckets: buckets}
}

// Add appends a raw line to the bucket for the given label. Labels outside
// the four result buckets are folded into the error bucket.
func (rs *ResultSet) Add(label Label, rawLine string) {
	if !label.IsBucket() {
		label = LabelError
	}
	rs.buckets[label] = append(rs.buckets[label], rawLine)
}

// Lines returns the raw lines bucketed under the given label.
func (rs *ResultSet) Lines(label Label) []string {
	return rs.buckets[label]
}

// Count returns the number of lines bucketed under the given label.
func (rs *ResultSet) Count(label Label) int {
	return len(rs.buckets[label])
}

// Total returns the number of lines across all buckets.
func (rs *ResultSet) Total() int {
	total := 0
	for _, lines := range rs.buckets {
		total += len(lines)
	}
	return total
}
