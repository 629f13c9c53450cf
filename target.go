package quantile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget is returned by NewTarget and New when a quantile or
	// an epsilon falls outside the open interval (0, 1).
	ErrInvalidTarget = errors.New("quantile and epsilon must be strictly between 0 and 1")

	// ErrNoTargets is returned by New when no targets are given.
	ErrNoTargets = errors.New("at least one target is required")
)

// Target couples a quantile to track with the error tolerance allowed when
// answering queries for it. The tolerance is relative rank error: querying
// a target (q, eps) after n observations returns a value whose true rank
// is within eps*n of q*n.
type Target struct {
	Quantile float64
	Epsilon  float64
}

// NewTarget validates and builds a Target. Both the quantile and the
// epsilon must lie strictly between 0 and 1.
func NewTarget(quantile, epsilon float64) (Target, error) {
	t := Target{Quantile: quantile, Epsilon: epsilon}
	if err := t.validate(); err != nil {
		return Target{}, err
	}
	return t, nil
}

func (t Target) validate() error {
	if !(t.Quantile > 0 && t.Quantile < 1) {
		return fmt.Errorf("%w: quantile %v", ErrInvalidTarget, t.Quantile)
	}
	if !(t.Epsilon > 0 && t.Epsilon < 1) {
		return fmt.Errorf("%w: epsilon %v", ErrInvalidTarget, t.Epsilon)
	}
	return nil
}
