package quantile

// Sample is one retained observation together with its rank uncertainty.
//
// Width is g(i) in the paper: the number of ranks this sample stands in
// for between itself and its predecessor. Delta is ∆(i): the extra ranks
// the sample could cover without breaking any target's error bound. Both
// always hold small non-negative integers; they are kept as float64 so the
// invariant arithmetic needs no conversions.
type Sample struct {
	Value float64
	Width float64
	Delta float64
}

// span is the total rank uncertainty the sample carries.
func (s Sample) span() float64 {
	return s.Width + s.Delta
}
