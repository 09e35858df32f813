package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"StockScreener/internal/model"
)

// RESTFetcher implements Fetcher against a JSON market-data REST API.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape of a daily bar. Close is null for
// sessions without a print.
type restBar struct {
	Timestamp int64    `json:"timestamp"`
	Close     *float64 `json:"close"`
}

type restProfile struct {
	LongName        *string  `json:"long_name"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Industry        string   `json:"industry"`
	Sector          string   `json:"sector"`
	OfficerName     string   `json:"officer_name"`
	OfficerTitle    string   `json:"officer_title"`
	Summary         string   `json:"summary"`
	CurrentPrice    *float64 `json:"current_price"`
	TargetMeanPrice *float64 `json:"target_mean_price"`
	TargetLowPrice  *float64 `json:"target_low_price"`
	TargetHighPrice *float64 `json:"target_high_price"`
}

func (f *RESTFetcher) FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.RawBar, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&days=%d", f.BaseURL, url.QueryEscape(symbol), days)
	var rb []restBar
	if err := f.getJSON(ctx, endpoint, &rb); err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	bars := make([]model.RawBar, len(rb))
	for i, b := range rb {
		bars[i] = model.RawBar{Time: time.Unix(b.Timestamp, 0).UTC(), Close: b.Close}
	}
	return bars, nil
}

func (f *RESTFetcher) FetchProfile(ctx context.Context, symbol string) (*model.CompanyProfile, error) {
	endpoint := fmt.Sprintf("%s/api/v1/profile?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	var rp restProfile
	if err := f.getJSON(ctx, endpoint, &rp); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	p := &model.CompanyProfile{
		Symbol:          symbol,
		City:            rp.City,
		State:           rp.State,
		Industry:        rp.Industry,
		Sector:          rp.Sector,
		OfficerName:     rp.OfficerName,
		OfficerTitle:    rp.OfficerTitle,
		Summary:         rp.Summary,
		CurrentPrice:    rp.CurrentPrice,
		TargetMeanPrice: rp.TargetMeanPrice,
		TargetLowPrice:  rp.TargetLowPrice,
		TargetHighPrice: rp.TargetHighPrice,
	}
	if rp.LongName != nil {
		p.LongName = *rp.LongName
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (f *RESTFetcher) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
