package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"StockScreener/internal/model"
)

func TestCalendarSpan_CoversSessions(t *testing.T) {
	for _, n := range []int{model.MinLookbackDays, 90, 365, model.MaxLookbackDays} {
		span := CalendarSpan(n)
		// 252 sessions a year is the usual US count.
		if sessions := span * 252 / 365; sessions < n+1 {
			t.Errorf("lookback %d: span %d holds ~%d sessions, need %d", n, span, sessions, n+1)
		}
	}
}

func TestGenerateMockBars_WeekdaysOnly(t *testing.T) {
	end := time.Date(2024, 3, 8, 16, 0, 0, 0, time.UTC) // Friday
	bars := generateMockBars(100, 13, end)
	if len(bars) != 10 {
		t.Fatalf("expected 10 weekday bars, got %d", len(bars))
	}
	for _, b := range bars {
		if wd := b.Time.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("unexpected weekend bar on %v", b.Time)
		}
		if b.Close == nil || *b.Close <= 0 {
			t.Errorf("expected positive close, got %v", b.Close)
		}
	}
}

func TestCollector_Collect(t *testing.T) {
	p := 10.0
	mock := &MockFetcher{
		Price: 100,
		Bars: map[string][]model.RawBar{
			"SPY": {{Time: time.Now(), Close: &p}},
		},
		Profiles: map[string]*model.CompanyProfile{
			"AAPL": {Symbol: "AAPL", LongName: "Apple Inc."},
		},
	}
	c := NewCollector(mock)

	data, err := c.Collect(context.Background(), model.Query{Ticker: "AAPL", Benchmark: "S&P500", LookbackDays: 30}, "SPY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.BenchmarkBars) != 1 {
		t.Errorf("expected fixed benchmark bars, got %d", len(data.BenchmarkBars))
	}
	if len(data.TickerBars) < 31 {
		t.Errorf("expected generated ticker bars to cover the lookback, got %d", len(data.TickerBars))
	}
	if data.Profile == nil || data.Profile.LongName != "Apple Inc." {
		t.Errorf("unexpected profile %+v", data.Profile)
	}

	// Missing profile is not fatal.
	data, err = c.Collect(context.Background(), model.Query{Ticker: "MSFT", LookbackDays: 30}, "SPY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Profile != nil {
		t.Errorf("expected nil profile, got %+v", data.Profile)
	}
}

func TestCollector_CollectFetchError(t *testing.T) {
	boom := errors.New("boom")
	c := NewCollector(&MockFetcher{Err: boom})
	if _, err := c.Collect(context.Background(), model.Query{Ticker: "AAPL", LookbackDays: 30}, "SPY"); !errors.Is(err, boom) {
		t.Errorf("expected wrapped fetch error, got %v", err)
	}
}
