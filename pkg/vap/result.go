package vap

import (
	"time"

	"github.com/google/uuid"
)

type Result[E Appender[E], A any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     A
	errs      E
	isValid   bool
}

func Valid[E Appender[E], A any](v A) Result[E, A] {
	return Result[E, A]{
		value:     v,
		isValid:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Invalid[E Appender[E], A any](errs E) Result[E, A] {
	return Result[E, A]{
		errs:      errs,
		isValid:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// InvalidFrom re-types an invalid result, forwarding its payload, id and
// creation time untouched.
func InvalidFrom[E Appender[E], In, Out any](from Result[E, In]) Result[E, Out] {
	return Result[E, Out]{
		errs:      from.errs,
		isValid:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[E, A]) Value() A {
	return r.value
}

func (r Result[E, A]) Errors() E {
	return r.errs
}

func (r Result[E, A]) IsValid() bool {
	return r.isValid
}

func (r Result[E, A]) IsInvalid() bool {
	return !r.isValid
}

func (r Result[E, A]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[E, A]) Id() uuid.UUID {
	return r.id
}
