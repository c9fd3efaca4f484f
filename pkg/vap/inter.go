package vap

import "time"

// Appender is the merge operation required of error payload types.
// Append must produce a fresh value holding the receiver's elements
// before the argument's, leaving both operands unmodified. It must be
// associative: x.Append(y).Append(z) equals x.Append(y.Append(z)).
type Appender[E any] interface {
	Append(other E) E
}

type ValueProvider[A any] interface {
	// Value returns the validated value
	Value() A
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErrors defines an interface for types that hold either a validated
// value or an accumulated error payload
type WithErrors[E, A any] interface {
	ValueProvider[A]
	// Errors returns the accumulated payload if validation failed
	Errors() E
	// IsValid returns true if validation succeeded
	IsValid() bool
}
