// Package choice turns row sets into the ordered label/value lists offered
// by single-select prompts.
package choice

import (
	"database/sql"
	"errors"
)

// ErrNoItems is returned when a required choice list has nothing to pick
var ErrNoItems = errors.New("no items available")

// NoneLabel is the label of the null sentinel
const NoneLabel = "None"

// Choice is one selectable entry. Value is null only for the sentinel.
type Choice struct {
	Label string
	Value sql.NullInt64
}

// IsNone reports whether c is the null sentinel
func (c Choice) IsNone() bool {
	return !c.Value.Valid
}

// None returns the sentinel representing a null reference
func None() Choice {
	return Choice{Label: NoneLabel}
}

// Of returns a choice carrying id
func Of(label string, id int64) Choice {
	return Choice{Label: label, Value: sql.NullInt64{Int64: id, Valid: true}}
}

type options struct {
	withNone bool
}

// Option configures Build
type Option func(*options)

// WithNone prepends the "None" sentinel
func WithNone() Option {
	return func(o *options) {
		o.withNone = true
	}
}

// Build maps rows to choices in source order
func Build[T any](rows []T, label func(T) string, value func(T) int64, opts ...Option) []Choice {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	choices := make([]Choice, 0, len(rows)+1)
	if o.withNone {
		choices = append(choices, None())
	}
	for _, row := range rows {
		choices = append(choices, Of(label(row), value(row)))
	}
	return choices
}

// Require returns ErrNoItems when choices holds no real entry.
// A list made only of the sentinel counts as empty.
func Require(choices []Choice) error {
	for _, c := range choices {
		if !c.IsNone() {
			return nil
		}
	}
	return ErrNoItems
}

// Exclude returns choices without the entry whose value is id
func Exclude(choices []Choice, id int64) []Choice {
	out := make([]Choice, 0, len(choices))
	for _, c := range choices {
		if c.Value.Valid && c.Value.Int64 == id {
			continue
		}
		out = append(out, c)
	}
	return out
}
