package model

import "time"

// RawBar is a single daily record as returned by a provider.
// Close is nil when the provider had no value for that session.
type RawBar struct {
	Time  time.Time
	Close *float64
}

// PriceObservation is a clean daily close.
type PriceObservation struct {
	Date  time.Time // midnight UTC of the trading day
	Close float64
}

// PriceSeries holds clean, chronologically ordered closes for one symbol.
type PriceSeries struct {
	Symbol       string
	Observations []PriceObservation
}

// Len returns the number of observations.
func (s PriceSeries) Len() int { return len(s.Observations) }

// Latest returns the most recent observation. The series must not be empty.
func (s PriceSeries) Latest() PriceObservation {
	return s.Observations[len(s.Observations)-1]
}

// MarketData is everything the collector gathered for one query.
type MarketData struct {
	TickerBars    []RawBar
	BenchmarkBars []RawBar
	Profile       *CompanyProfile // nil when the provider had none
	FetchedAt     time.Time
}

// CalendarDate truncates t to its calendar day in t's own location and
// returns that day at midnight UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
