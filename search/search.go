// Package search defines the port to the host platform's record-search
// capability: filtered, column-projected row retrieval with range-based
// pagination. The query mechanism itself is owned by the host and only
// consumed here.
package search

import (
	"context"
)

// Filter is a single (field, operator, value) predicate triple.
type Filter struct {
	Field string `json:"field"`
	Op    string `json:"op"`
	Value string `json:"value"`
}

// QuerySpec describes one record search: the record type, the ordered
// filter predicates and the ordered column projection. Build it once via
// NewQuerySpec and treat it as immutable.
type QuerySpec struct {
	RecordType string
	Filters    []Filter
	Columns    []string
}

// NewQuerySpec builds a QuerySpec with defensive copies of both slices so
// the spec cannot be mutated through the caller's backing arrays.
func NewQuerySpec(recordType string, filters []Filter, columns []string) QuerySpec {
	q := QuerySpec{
		RecordType: recordType,
		Filters:    make([]Filter, len(filters)),
		Columns:    make([]string, len(columns)),
	}
	copy(q.Filters, filters)
	copy(q.Columns, columns)
	return q
}

// FieldValue is one projected cell. The host search returns both the
// machine value and the resolved display text for reference fields.
type FieldValue struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// RawRecord is a single projected row keyed by column name.
type RawRecord map[string]FieldValue

// Value returns the machine value of a column, or "" when absent.
func (r RawRecord) Value(column string) string {
	return r[column].Value
}

// Text returns the display text of a column, or "" when absent.
func (r RawRecord) Text(column string) string {
	return r[column].Text
}

// RecordSearch executes queries against the host platform. Search returns
// the rows in the half-open window [start, end); a window past the end of
// the result set yields an empty slice, not an error.
type RecordSearch interface {
	Search(ctx context.Context, q QuerySpec, start, end int) ([]RawRecord, error)
}
