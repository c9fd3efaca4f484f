package pipe

// Curry2 converts a two-argument function into the curried form that
// Lift/Next chains thread one argument at a time.
func Curry2[A, B, C any](f func(a A, b B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 converts a three-argument function into its curried form.
func Curry3[A, B, C, D any](f func(a A, b B, c C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}
