package pipe

import (
	"github.com/ib-77/vap/pkg/vap"
	"github.com/ib-77/vap/pkg/vap/solo"
)

// Lift seeds a chain by mapping a plain (usually curried) function over
// the first validated argument. Equivalent to solo.Map with the operands
// flipped for left-to-right reading.
func Lift[E vap.Appender[E], In, Out any](f func(in In) Out,
	input vap.Result[E, In]) vap.Result[E, Out] {
	return solo.Map(input, f)
}

// Next applies the next validated argument to a lifted function. On the
// valid path it behaves exactly like solo.Apply; when both operands are
// invalid the ARGUMENT's errors come first in the merged payload, the
// reverse of solo.Apply. A chain built with Lift/Next therefore surfaces
// errors in a different order than directly nested Apply calls over the
// same inputs. Both orders are part of the contract.
func Next[E vap.Appender[E], In, Out any](fn vap.Result[E, func(In) Out],
	input vap.Result[E, In]) vap.Result[E, Out] {

	if fn.IsValid() || input.IsValid() {
		return solo.Apply(fn, input)
	}
	return vap.Invalid[E, Out](input.Errors().Append(fn.Errors()))
}

// Map2 combines two validated values with a plain two-argument function.
// Error accumulation follows Next: on two invalid inputs the second
// argument's errors precede the first's.
func Map2[E vap.Appender[E], A, B, Out any](f func(a A, b B) Out,
	ra vap.Result[E, A], rb vap.Result[E, B]) vap.Result[E, Out] {
	return Next(Lift(Curry2(f), ra), rb)
}

// Map3 combines three validated values with a plain three-argument
// function, accumulating errors like a Lift/Next chain.
func Map3[E vap.Appender[E], A, B, C, Out any](f func(a A, b B, c C) Out,
	ra vap.Result[E, A], rb vap.Result[E, B], rc vap.Result[E, C]) vap.Result[E, Out] {
	return Next(Next(Lift(Curry3(f), ra), rb), rc)
}
