// Package models defines the persisted content records for the site.
package models

// Default pagination values
const (
	// DefaultLimit is the default number of items per page
	DefaultLimit = 50
	// MaxLimit is the maximum number of items per page
	MaxLimit = 200
)

// ListOptions provides pagination options for list operations
type ListOptions struct {
	Limit  int
	Offset int
}

// Normalize clamps pagination values to their allowed ranges.
func (o *ListOptions) Normalize() {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
}
