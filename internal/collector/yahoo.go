package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"StockScreener/internal/model"
)

const (
	yahooBaseURL = "https://query1.finance.yahoo.com"

	// DefaultRateLimit is the default number of provider requests per second.
	DefaultRateLimit = 2
)

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
	Limiter *rate.Limiter
	Now     func() time.Time
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string, requestsPerSecond int) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRateLimit
	}
	return &YahooFetcher{
		BaseURL: yahooBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		Limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		Now:     time.Now,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				GMTOffset int    `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// yahooValue is Yahoo's {"raw": 1.23, "fmt": "1.23"} number wrapper.
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				City            string `json:"city"`
				State           string `json:"state"`
				Industry        string `json:"industry"`
				Sector          string `json:"sector"`
				Summary         string `json:"longBusinessSummary"`
				CompanyOfficers []struct {
					Name  string `json:"name"`
					Title string `json:"title"`
				} `json:"companyOfficers"`
			} `json:"assetProfile"`
			Price struct {
				LongName string `json:"longName"`
			} `json:"price"`
			FinancialData struct {
				CurrentPrice    yahooValue `json:"currentPrice"`
				TargetMeanPrice yahooValue `json:"targetMeanPrice"`
				TargetLowPrice  yahooValue `json:"targetLowPrice"`
				TargetHighPrice yahooValue `json:"targetHighPrice"`
			} `json:"financialData"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"quoteSummary"`
}

func (f *YahooFetcher) get(ctx context.Context, u string, out any) error {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("yahoo decode: %w", err)
	}
	return nil
}

// FetchDailyBars requests daily bars between now and `days` calendar days ago.
// Sessions Yahoo reports without a close keep a nil Close.
func (f *YahooFetcher) FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.RawBar, error) {
	end := f.Now()
	start := end.AddDate(0, 0, -days)
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		f.BaseURL, url.PathEscape(symbol), start.Unix(), end.Unix())

	var chart yahooChart
	if err := f.get(ctx, u, &chart); err != nil {
		return nil, err
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote for %s", symbol)
	}
	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return nil, fmt.Errorf("yahoo: %s has %d timestamps but %d closes", symbol, len(result.Timestamp), len(closes))
	}

	// Calendar dates are taken in the exchange's own timezone.
	loc := time.FixedZone(symbol, result.Meta.GMTOffset)
	bars := make([]model.RawBar, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		bars[i] = model.RawBar{Time: time.Unix(ts, 0).In(loc), Close: closes[i]}
	}
	return bars, nil
}

// FetchProfile reads the company profile and analyst targets.
func (f *YahooFetcher) FetchProfile(ctx context.Context, symbol string) (*model.CompanyProfile, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		f.BaseURL, url.PathEscape(symbol), strings.Join([]string{"assetProfile", "price", "financialData"}, ","))

	var summary yahooSummary
	if err := f.get(ctx, u, &summary); err != nil {
		return nil, err
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no profile for %s", symbol)
	}

	r := summary.QuoteSummary.Result[0]
	p := &model.CompanyProfile{
		Symbol:          symbol,
		LongName:        r.Price.LongName,
		City:            r.AssetProfile.City,
		State:           r.AssetProfile.State,
		Industry:        r.AssetProfile.Industry,
		Sector:          r.AssetProfile.Sector,
		Summary:         r.AssetProfile.Summary,
		CurrentPrice:    r.FinancialData.CurrentPrice.Raw,
		TargetMeanPrice: r.FinancialData.TargetMeanPrice.Raw,
		TargetLowPrice:  r.FinancialData.TargetLowPrice.Raw,
		TargetHighPrice: r.FinancialData.TargetHighPrice.Raw,
	}
	if len(r.AssetProfile.CompanyOfficers) > 0 {
		p.OfficerName = r.AssetProfile.CompanyOfficers[0].Name
		p.OfficerTitle = r.AssetProfile.CompanyOfficers[0].Title
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
