package index

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBenchmark is returned for a benchmark outside the supported set.
var ErrUnknownBenchmark = errors.New("unknown benchmark")

// Benchmark is a named market proxied by an ETF.
type Benchmark struct {
	Name   string
	Ticker string
}

// Benchmarks lists the supported benchmarks in display order.
var Benchmarks = []Benchmark{
	{"S&P500", "SPY"},
	{"DJIA", "DIA"},
	{"Nasdaq", "QQQ"},
	{"Russell 1000", "IWB"},
	{"Russell 2000", "IWM"},
}

// LookupBenchmark resolves a benchmark by name or by its ETF ticker,
// ignoring case.
func LookupBenchmark(name string) (Benchmark, error) {
	name = strings.TrimSpace(name)
	for _, b := range Benchmarks {
		if strings.EqualFold(b.Name, name) || strings.EqualFold(b.Ticker, name) {
			return b, nil
		}
	}
	return Benchmark{}, fmt.Errorf("%w: %q", ErrUnknownBenchmark, name)
}
