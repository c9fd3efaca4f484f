package solo

import (
	"github.com/ib-77/vap/pkg/vap"
)

func Succeed[E vap.Appender[E], A any](input A) vap.Result[E, A] {
	return vap.Valid[E](input)
}

func Fail[E vap.Appender[E], A any](errs E) vap.Result[E, A] {
	return vap.Invalid[E, A](errs)
}

// Map applies onValid to the contained value only when input is valid.
// An invalid input passes through with its payload untouched; onValid is
// never called for it.
func Map[E vap.Appender[E], In, Out any](input vap.Result[E, In],
	onValid func(in In) Out) vap.Result[E, Out] {

	if input.IsValid() {
		return vap.Valid[E](onValid(input.Value()))
	}
	return vap.InvalidFrom[E, In, Out](input)
}

// Apply applies a validated function to a validated argument. When both
// operands are invalid the payloads merge, the function holder's errors
// before the argument's. A single invalid operand is forwarded as-is.
func Apply[E vap.Appender[E], In, Out any](fn vap.Result[E, func(In) Out],
	input vap.Result[E, In]) vap.Result[E, Out] {

	if fn.IsValid() {
		if input.IsValid() {
			return vap.Valid[E](fn.Value()(input.Value()))
		}
		return vap.InvalidFrom[E, In, Out](input)
	}

	if input.IsValid() {
		return vap.InvalidFrom[E, func(In) Out, Out](fn)
	}

	return vap.Invalid[E, Out](fn.Errors().Append(input.Errors()))
}

func Validate[A any](input A,
	check func(in A) (valid bool, errMsg string)) vap.Result[vap.Messages, A] {
	return AndValidate(Succeed[vap.Messages](input), check)
}

func AndValidate[A any](input vap.Result[vap.Messages, A],
	check func(in A) (valid bool, errMsg string)) vap.Result[vap.Messages, A] {

	if input.IsValid() {

		if isValid, errMsg := check(input.Value()); isValid {
			return input
		} else {
			return vap.Invalid[vap.Messages, A](vap.Message(errMsg))
		}
	}
	return input
}

// ValidateAll runs every check against the input and accumulates all
// failure messages, never stopping at the first.
func ValidateAll[A any](input A,
	checks ...func(in A) (valid bool, errMsg string)) vap.Result[vap.Messages, A] {

	var errs vap.Messages
	for _, check := range checks {
		if isValid, errMsg := check(input); !isValid {
			errs = errs.Append(vap.Message(errMsg))
		}
	}

	if len(errs) > 0 {
		return vap.Invalid[vap.Messages, A](errs)
	}
	return vap.Valid[vap.Messages](input)
}

func DoubleMap[E vap.Appender[E], In, Out any](input vap.Result[E, In],
	onValid func(in In) Out,
	onInvalid func(errs E) E) vap.Result[E, Out] {

	if input.IsValid() {
		return vap.Valid[E](onValid(input.Value()))
	}
	return vap.Invalid[E, Out](onInvalid(input.Errors()))
}

func Finally[E vap.Appender[E], In, Out any](input vap.Result[E, In],
	onValid func(in In) Out,
	onInvalid func(errs E) Out) Out {

	if input.IsValid() {
		return onValid(input.Value())
	}
	return onInvalid(input.Errors())
}
