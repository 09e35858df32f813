package collector

import (
	"context"

	"StockScreener/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyBars returns daily bars covering the trailing number of calendar days.
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.RawBar, error)
	FetchProfile(ctx context.Context, symbol string) (*model.CompanyProfile, error)
	Name() string
}
