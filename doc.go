// Package quantile computes approximate quantiles over an unbounded stream
// of observations using bounded memory.
//
// It implements the algorithm from "Effective Computation of Biased
// Quantiles over Data Streams" by Cormode, Korn, Muthukrishnan and
// Srivastava. Each tracked quantile carries its own error tolerance, so a
// little precision is traded for a summary that stays small no matter how
// many values are observed.
//
//	median, _ := quantile.NewTarget(0.5, 0.005)
//	p90, _ := quantile.NewTarget(0.9, 0.005)
//	stream, _ := quantile.New(median, p90)
//
//	for _, v := range latencies {
//		stream.Observe(v)
//	}
//	estimate, err := stream.Query(0.9)
//
// A Stream is not safe for concurrent use. Callers that observe and query
// from multiple goroutines must serialize access themselves, for example
// with a sync.RWMutex around the whole stream.
package quantile
