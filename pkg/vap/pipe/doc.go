// Package pipe provides left-to-right pipeline operators over Result[E, A]
// for applying a multi-argument function to independently validated
// arguments.
//
// A chain lifts a curried function over its first argument with Lift and
// feeds each further argument with Next:
//
//	pipe.Next(pipe.Lift(add2, parseInt("20")), parseInt("22"))
//
// All-valid chains produce the fully applied value; chains with invalid
// arguments accumulate every argument's errors. Next merges two invalid
// operands argument-errors-first, the reverse of solo.Apply, so the two
// call styles order accumulated payloads differently.
//
// Key operations:
// - Lift: seed a chain from a plain function and the first argument
// - Next: apply each subsequent validated argument
// - Map2/Map3: combine two or three validated values in one call
// - Curry2/Curry3: turn ordinary functions into chainable curried form
package pipe
