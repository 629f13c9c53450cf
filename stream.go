package quantile

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidObservation is returned by Observe for NaN or infinite
	// values. The stream is left untouched.
	ErrInvalidObservation = errors.New("observation must be a finite number")

	// ErrUnsupportedQuantile is returned by Query for a quantile that was
	// not registered at construction time. The stream carries no error
	// bound for it, so no answer is given.
	ErrUnsupportedQuantile = errors.New("quantile was not registered at construction")

	// ErrEmptyStream is returned by Query before any value was observed.
	ErrEmptyStream = errors.New("no observations yet")
)

// Stream maintains a compressed summary of every value observed so far and
// answers quantile queries for the targets it was built with.
//
// Observe and Query perform no I/O and never block. A Stream carries no
// internal locking, see the package documentation.
type Stream struct {
	targets []Target
	samples []Sample
	n       int

	// observations since the last compression; compression runs every
	// compressEvery inserts to keep the sample list sub-linear in n.
	observed      int
	compressEvery int
}

// New builds a Stream tracking the given targets. The target list must be
// non-empty and every target must satisfy the NewTarget validation; the
// list is copied, so the caller may reuse the slice.
//
// Registering the same quantile twice with different epsilons is allowed:
// both bounds feed the invariant function and the tighter one dominates.
func New(targets ...Target) (*Stream, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	minEps := 1.0
	for _, t := range targets {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if t.Epsilon < minEps {
			minEps = t.Epsilon
		}
	}

	return &Stream{
		targets:       append([]Target(nil), targets...),
		compressEvery: int(math.Ceil(1 / (2 * minEps))),
	}, nil
}

// invariant is f(r, n): the maximum total rank uncertainty (Width+Delta)
// permitted for a sample whose left edge sits at rank r out of n, taking
// the tightest bound across all registered targets.
func (s *Stream) invariant(r, n float64) float64 {
	m := math.MaxFloat64
	for _, t := range s.targets {
		var f float64
		if r <= t.Quantile*n {
			f = 2 * t.Epsilon * r / t.Quantile
		} else {
			f = 2 * t.Epsilon * (n - r) / (1 - t.Quantile)
		}
		if f < m {
			m = f
		}
	}
	return m
}

// Observe feeds one value into the stream. NaN and ±Inf are rejected with
// ErrInvalidObservation before any state changes.
func (s *Stream) Observe(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidObservation, v)
	}

	// Insertion point: immediately before the first strictly greater
	// sample. Ties keep arrival order, which is enough because only rank
	// bounds matter.
	idx := sort.Search(len(s.samples), func(i int) bool {
		return s.samples[i].Value > v
	})

	var r float64
	for _, smp := range s.samples[:idx] {
		r += smp.Width
	}

	s.n++

	// The extremes are tracked exactly: they pin the valid query range.
	var delta float64
	if idx > 0 && idx < len(s.samples) {
		delta = math.Floor(s.invariant(r, float64(s.n))) - 1
		if delta < 0 {
			delta = 0
		}
	}

	s.samples = append(s.samples, Sample{})
	copy(s.samples[idx+1:], s.samples[idx:])
	s.samples[idx] = Sample{Value: v, Width: 1, Delta: delta}

	s.observed++
	if s.observed >= s.compressEvery {
		s.compress()
		s.observed = 0
	}
	return nil
}

// Query returns the current estimate for q. The true rank of the returned
// value is within eps*n of q*n, with eps the epsilon registered for q.
//
// q must compare equal to the quantile of one of the registered targets;
// anything else is ErrUnsupportedQuantile. An empty stream is
// ErrEmptyStream. Query does not mutate the stream.
func (s *Stream) Query(q float64) (float64, error) {
	if !s.tracked(q) {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedQuantile, q)
	}
	if s.n == 0 {
		return 0, ErrEmptyStream
	}

	n := float64(s.n)
	rank := math.Ceil(q * n)
	t := rank + s.invariant(rank, n)/2

	// Return the predecessor of the first sample whose maximum possible
	// rank overshoots the target band.
	var r float64
	for i := 1; i < len(s.samples); i++ {
		r += s.samples[i-1].Width
		if r+s.samples[i].span() > t {
			return s.samples[i-1].Value, nil
		}
	}
	return s.samples[len(s.samples)-1].Value, nil
}

func (s *Stream) tracked(q float64) bool {
	for _, t := range s.targets {
		if t.Quantile == q {
			return true
		}
	}
	return false
}

// Count reports the number of values observed so far.
func (s *Stream) Count() int {
	return s.n
}

// Len reports the number of samples currently retained.
func (s *Stream) Len() int {
	return len(s.samples)
}

// Samples returns a copy of the retained samples in value order.
func (s *Stream) Samples() []Sample {
	return append([]Sample(nil), s.samples...)
}

// Targets returns a copy of the registered targets.
func (s *Stream) Targets() []Target {
	return append([]Target(nil), s.targets...)
}

// Reset forgets every observation while keeping the registered targets.
func (s *Stream) Reset() {
	s.samples = nil
	s.n = 0
	s.observed = 0
}
