package main

import (
	"fmt"
	"math/rand"

	"github.com/thibaultam/quantile"
)

func main() {
	median, err := quantile.NewTarget(0.5, 0.005)
	if err != nil {
		panic(err)
	}
	p90, err := quantile.NewTarget(0.9, 0.005)
	if err != nil {
		panic(err)
	}
	p99, err := quantile.NewTarget(0.99, 0.001)
	if err != nil {
		panic(err)
	}

	stream, err := quantile.New(median, p90, p99)
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100000; i++ {
		if err := stream.Observe(rng.NormFloat64()); err != nil {
			panic(err)
		}
	}

	fmt.Println("observed:", stream.Count(), "retained:", stream.Len())
	res, err := stream.Result()
	if err != nil {
		panic(err)
	}
	for _, t := range stream.Targets() {
		fmt.Printf("p%g = %.4f\n", t.Quantile*100, res[t.Quantile])
	}
}
