package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"StockScreener/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price    float64
	Bars     map[string][]model.RawBar
	Profiles map[string]*model.CompanyProfile
	Err      error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol string, days int) ([]model.RawBar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(m.Price, days, time.Now()), nil
}

func (m *MockFetcher) FetchProfile(_ context.Context, symbol string) (*model.CompanyProfile, error) {
	if p, ok := m.Profiles[symbol]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("mock: no profile for %s", symbol)
}

// generateMockBars produces one bar per weekday over the trailing calendar days.
func generateMockBars(basePrice float64, days int, end time.Time) []model.RawBar {
	var bars []model.RawBar
	for i := days; i >= 0; i-- {
		t := end.AddDate(0, 0, -i)
		if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
			continue
		}
		p := basePrice * (1 + float64(len(bars)%7-3)*0.002)
		bars = append(bars, model.RawBar{Time: t, Close: &p})
	}
	return bars
}

// CalendarSpan returns how many calendar days to request from a provider so
// that the given number of trading sessions, plus the reference session
// before them, are covered despite weekends and market holidays.
func CalendarSpan(sessions int) int {
	return (sessions+1)*7/5 + sessions/15 + 7
}

// Collector orchestrates data fetching for a query.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches the ticker and benchmark bars, and the ticker profile when
// the provider has one.
func (c *Collector) Collect(ctx context.Context, q model.Query, benchmarkTicker string) (*model.MarketData, error) {
	span := CalendarSpan(q.LookbackDays)

	tickerBars, err := c.Fetcher.FetchDailyBars(ctx, q.Ticker, span)
	if err != nil {
		return nil, fmt.Errorf("fetch %s bars: %w", q.Ticker, err)
	}
	benchBars, err := c.Fetcher.FetchDailyBars(ctx, benchmarkTicker, span)
	if err != nil {
		return nil, fmt.Errorf("fetch %s bars: %w", benchmarkTicker, err)
	}

	data := &model.MarketData{
		TickerBars:    tickerBars,
		BenchmarkBars: benchBars,
		FetchedAt:     time.Now(),
	}

	// Profile is context only; the report still renders without it.
	if p, err := c.Fetcher.FetchProfile(ctx, q.Ticker); err != nil {
		log.Printf("[WARN] %s profile unavailable: %v", q.Ticker, err)
	} else {
		data.Profile = p
	}

	log.Printf("[INFO] collected %s: %d bars, %s: %d bars (%d calendar days, source %s)",
		q.Ticker, len(tickerBars), benchmarkTicker, len(benchBars), span, c.Fetcher.Name())
	return data, nil
}
