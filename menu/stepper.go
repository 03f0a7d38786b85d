package menu

// Number is any value a stepped option can hold
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Step applies one left or right edge to *v inside [lo, hi].
//
// A value outside the bounds is first snapped to the nearest bound. Left at lo
// wraps to hi and right at hi wraps to lo; otherwise the value moves by step
// without passing the bound. A float landing within a billionth of a step of a
// bound is set to the bound. Step reports whether an edge was applied.
func Step[T Number](v *T, lo, hi, step T, left, right bool) bool {
	tol := float64(step) * 1e-9
	if *v < lo {
		*v = lo
	} else if *v > hi {
		*v = hi
	}

	switch {
	case left:
		switch {
		case *v <= lo:
			*v = hi
		case *v-lo < step:
			*v = lo
		default:
			*v -= step
			if float64(*v-lo) < tol {
				*v = lo
			}
		}
		return true
	case right:
		switch {
		case *v >= hi:
			*v = lo
		case hi-*v < step:
			*v = hi
		default:
			*v += step
			if float64(hi-*v) < tol {
				*v = hi
			}
		}
		return true
	}
	return false
}
