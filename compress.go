package quantile

// compress merges adjacent samples whose combined rank uncertainty still
// fits the invariant, shrinking the list without widening any error bound.
// A single left-to-right pass; the merge test is exactly the invariant, so
// re-running without new observations changes nothing.
//
// The first and last samples are never removed: they pin the observed
// minimum and maximum. The observation count n is unchanged.
func (s *Stream) compress() {
	if len(s.samples) < 3 {
		return
	}

	n := float64(s.n)

	w := 0                  // index of the last kept sample
	r := s.samples[0].Width // rank of the left edge of the current sample

	for i := 1; i+1 < len(s.samples); i++ {
		cur := s.samples[i]
		next := &s.samples[i+1]

		if cur.Width+next.span() <= s.invariant(r+cur.Width, n) {
			// Fold cur into its successor, which keeps its value and delta.
			next.Width += cur.Width
		} else {
			w++
			s.samples[w] = cur
			r += cur.Width
		}
	}

	w++
	s.samples[w] = s.samples[len(s.samples)-1]
	s.samples = s.samples[:w+1]
}
