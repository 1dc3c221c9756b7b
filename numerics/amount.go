package numerics

// Amount is a value that always lies within its Range. There is deliberately
// no conversion from a bare float64: that would have to invent a range and
// silently drop an existing one.
type Amount struct {
	value float64
	rng   Range
}

// NewAmount bounds value by the range 0~value.
func NewAmount(value float64) *Amount {
	return NewAmountIn(value, NewRange(0, value))
}

func NewAmountIn(value float64, r Range) *Amount {
	a := &Amount{rng: r}
	a.SetValue(value)
	return a
}

func (a *Amount) Value() float64 {
	return a.value
}

// Float64 unwraps the amount into a plain number.
func (a *Amount) Float64() float64 {
	return a.value
}

// SetValue stores value clamped to the current range.
func (a *Amount) SetValue(value float64) {
	a.value = a.rng.AtOrBetween(value)
}

// Add moves the value by delta, stopping at the range boundaries.
func (a *Amount) Add(delta float64) {
	a.SetValue(a.value + delta)
}

func (a *Amount) Range() Range {
	return a.rng
}

// SetRange replaces the range and clamps the current value into it.
func (a *Amount) SetRange(r Range) {
	a.rng = r
	a.SetValue(a.value)
}

// Ratio is the position of the value within the range, in [0, 1].
func (a *Amount) Ratio() float64 {
	return a.rng.Ratio(a.value)
}

func (a *Amount) Percent() float64 {
	return a.rng.Percent(a.value)
}

func (a *Amount) Equal(other *Amount) bool {
	return a.value == other.value && a.rng.Equal(other.rng)
}

func (a *Amount) Greater(other *Amount) bool {
	return a.value > other.value
}

func (a *Amount) Less(other *Amount) bool {
	return a.value < other.value
}

func (a *Amount) String() string {
	return formatFloat(a.value)
}
