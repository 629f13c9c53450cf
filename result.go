package quantile

// Result queries every registered target and returns the estimates keyed
// by quantile. On an empty stream it returns ErrEmptyStream.
func (s *Stream) Result() (map[float64]float64, error) {
	out := make(map[float64]float64, len(s.targets))
	for _, t := range s.targets {
		v, err := s.Query(t.Quantile)
		if err != nil {
			return nil, err
		}
		out[t.Quantile] = v
	}
	return out, nil
}
