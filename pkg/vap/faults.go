package vap

import (
	"errors"
	"reflect"
)

// Faults is an ordered error payload for callers that already hold error
// values instead of plain messages.
type Faults []error

// FaultsOf explodes an error into a payload, unwrapping joined errors
// (errors.Join et al.) into their individual parts.
func FaultsOf(err error) Faults {
	if IsNil(err) {
		return Faults{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return append(Faults{}, e.Unwrap()...)
	}

	return Faults{err}
}

// Append concatenates receiver elements then other's into a fresh slice.
func (f Faults) Append(other Faults) Faults {
	merged := make(Faults, 0, len(f)+len(other))
	merged = append(merged, f...)
	return append(merged, other...)
}

// Err collapses the payload into a single error, nil when empty.
func (f Faults) Err() error {
	return errors.Join(f...)
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
