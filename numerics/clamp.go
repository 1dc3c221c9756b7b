package numerics

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// AtOrBetween forces x into [min, max].
func AtOrBetween[T Number](x, min, max T) T {
	if x > max {
		return max
	}
	if x < min {
		return min
	}
	return x
}

func AtOrAbove[T Number](x, min T) T {
	if x < min {
		return min
	}
	return x
}

func AtOrBelow[T Number](x, max T) T {
	if x > max {
		return max
	}
	return x
}

// Positive returns x, or 0 when x is negative.
func Positive[T Number](x T) T {
	return AtOrAbove(x, 0)
}

// Negative returns x, or 0 when x is positive.
func Negative[T Number](x T) T {
	return AtOrBelow(x, 0)
}

func IsBetween[T Number](x, min, max T) bool {
	return x >= min && x <= max
}
