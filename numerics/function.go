package numerics

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownFunction = errors.New("unknown function")

// Function names an easing curve that maps x within [from, to] onto the same
// boundaries. FT curves travel from -> to, FTF curves travel from -> to -> from.
//
// Every curve clamps x into the boundaries first. When from == to the curves
// divide by zero and return NaN, following IEEE 754; nothing panics.
type Function int

const (
	//	t     /
	//	|   /
	//	| /
	//	f----t
	LinearFT Function = iota
	//	t    .-
	//	|   /
	//	| _'
	//	f----t
	SmoothFT
	//	t     /
	//	|    /
	//	| _.'
	//	f----t
	SmoothStartFT
	//	t  .--
	//	|  /
	//	| /
	//	f----t
	SmoothEndFT
	//	t   .-.
	//	|  /   \
	//	|_'     '_
	//	f--------t
	SmoothFTF
	//	t   /\
	//	|  /  \
	//	| /    \
	//	f--------t
	SmoothMiddleFTF
)

var functionNames = map[Function]string{
	LinearFT:        "Linear_FT",
	SmoothFT:        "Smooth_FT",
	SmoothStartFT:   "SmoothStart_FT",
	SmoothEndFT:     "SmoothEnd_FT",
	SmoothFTF:       "Smooth_FTF",
	SmoothMiddleFTF: "SmoothMiddle_FTF",
}

// Functions lists every curve in declaration order.
func Functions() []Function {
	return []Function{LinearFT, SmoothFT, SmoothStartFT, SmoothEndFT, SmoothFTF, SmoothMiddleFTF}
}

// Evaluate applies f to x. Unknown functions behave like LinearFT.
func Evaluate(f Function, x float64, from float64, to float64) float64 {
	switch f {
	case SmoothFT:
		return Smooth(x, from, to)
	case SmoothStartFT:
		return SmoothStart(x, from, to)
	case SmoothEndFT:
		return SmoothEnd(x, from, to)
	case SmoothFTF:
		return SmoothReturn(x, from, to)
	case SmoothMiddleFTF:
		return SmoothMiddle(x, from, to)
	default:
		return Linear(x, from, to)
	}
}

func (f Function) At(x float64, from float64, to float64) float64 {
	return Evaluate(f, x, from, to)
}

// Over evaluates f between the reported Start and End of r.
func (f Function) Over(x float64, r Range) float64 {
	return Evaluate(f, x, r.Start(), r.End())
}

func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Function(%d)", int(f))
}

func (f Function) MarshalText() ([]byte, error) {
	if _, ok := functionNames[f]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFunction, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Function) UnmarshalText(text []byte) error {
	parsed, err := ParseFunction(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFunction accepts names like "Smooth_FT", "smoothft" or "smooth-ft".
func ParseFunction(name string) (Function, error) {
	key := normalizeName(name)
	for f, n := range functionNames {
		if normalizeName(n) == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
}

func clampBetween(x float64, from float64, to float64) float64 {
	return AtOrBetween(x, math.Min(from, to), math.Max(from, to))
}

// Linear is f(x) = x.
func Linear(x float64, from float64, to float64) float64 {
	return clampBetween(x, from, to)
}

// Smooth eases in and out over half a cosine period:
// f(x) = (-d*cos(pi*(x-f)/d) + t + f) / 2, d = t - f.
func Smooth(x float64, from float64, to float64) float64 {
	x = clampBetween(x, from, to)
	delta := to - from
	return ((-delta * math.Cos(math.Pi*(x-from)/delta)) + to + from) / 2
}

// SmoothStart eases in only: f(x) = -d*cos(pi*(x-f)/2d) + t.
func SmoothStart(x float64, from float64, to float64) float64 {
	x = clampBetween(x, from, to)
	delta := to - from
	return (-delta * math.Cos(math.Pi*(x-from)/(2*delta))) + to
}

// SmoothEnd eases out only: f(x) = d*sin(pi*(x-f)/2d) + f.
func SmoothEnd(x float64, from float64, to float64) float64 {
	x = clampBetween(x, from, to)
	delta := to - from
	return (delta * math.Sin(math.Pi*(x-from)/(2*delta))) + from
}

// SmoothReturn rises to t at the midpoint and eases back to f over a full
// cosine period: f(x) = (-d*cos(2pi*(x-f)/d) + t + f) / 2.
func SmoothReturn(x float64, from float64, to float64) float64 {
	x = clampBetween(x, from, to)
	delta := to - from
	return ((-delta * math.Cos(2*math.Pi*(x-from)/delta)) + to + from) / 2
}

// SmoothMiddle peaks at t in the middle and falls away on both sides:
// f(x) = -|d*cos(pi*(x-f)/d)| + t.
func SmoothMiddle(x float64, from float64, to float64) float64 {
	x = clampBetween(x, from, to)
	delta := to - from
	return -math.Abs(delta*math.Cos(math.Pi*(x-from)/delta)) + to
}
