package store

// Op is a filter comparison operator.
type Op int

const (
	// OpEq matches the stored value exactly. When the stored field is an
	// array it matches membership, mirroring document-store semantics.
	OpEq Op = iota
	// OpContains matches a case-insensitive substring of a text field.
	OpContains
	// OpIn matches any of the provided values; used for batch id fetches.
	OpIn
)

type Condition struct {
	Field string
	Op    Op
	Value any
}

// Filter is an opaque predicate set. And conditions must all hold; Or
// conditions are combined disjunctively (used for multi-field text search).
// The zero Filter matches every document.
type Filter struct {
	And []Condition
	Or  []Condition
}

func (f Filter) IsEmpty() bool {
	return len(f.And) == 0 && len(f.Or) == 0
}

func (f Filter) WithEq(field string, value any) Filter {
	f.And = append(f.And, Condition{Field: field, Op: OpEq, Value: value})
	return f
}

// WithSearch adds a case-insensitive substring match over one or more text
// fields, OR-combined.
func (f Filter) WithSearch(needle string, fields ...string) Filter {
	for _, field := range fields {
		f.Or = append(f.Or, Condition{Field: field, Op: OpContains, Value: needle})
	}
	return f
}

// In builds a multi-value membership filter, typically on _id.
func In(field string, values []string) Filter {
	return Filter{And: []Condition{{Field: field, Op: OpIn, Value: values}}}
}
