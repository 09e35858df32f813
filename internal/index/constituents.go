package index

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Supported indices.
const (
	SP500 = "S&P500"
	DJIA  = "DJIA"
)

// Default membership pages.
const (
	DefaultSP500URL = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"
	DefaultDJIAURL  = "https://en.wikipedia.org/wiki/Dow_Jones_Industrial_Average"
)

// ErrUnknownIndex is returned for an index without a membership source.
var ErrUnknownIndex = errors.New("unknown index")

// Source locates the membership table of an index: the page URL and the
// zero-based position of the table among all tables on the page.
type Source struct {
	URL   string
	Table int
}

// Lister reads index membership from HTML tables.
type Lister struct {
	Client  *http.Client
	Sources map[string]Source
}

// NewLister creates a lister for S&P500 and DJIA with optional proxy support.
// Empty URLs fall back to the Wikipedia pages.
func NewLister(sp500URL, djiaURL, proxyURL string) *Lister {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if sp500URL == "" {
		sp500URL = DefaultSP500URL
	}
	if djiaURL == "" {
		djiaURL = DefaultDJIAURL
	}
	return &Lister{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		Sources: map[string]Source{
			SP500: {URL: sp500URL, Table: 0},
			DJIA:  {URL: djiaURL, Table: 1},
		},
	}
}

// Indices returns the names of indices with a membership source.
func Indices() []string { return []string{SP500, DJIA} }

// Constituents returns the ticker symbols of the given index in page order.
func (l *Lister) Constituents(ctx context.Context, index string) ([]string, error) {
	src, ok := l.Sources[index]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndex, index)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s constituents: %w", index, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s constituents: status %d", index, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s page: %w", index, err)
	}
	symbols, err := symbolColumn(doc, src.Table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", index, err)
	}
	log.Printf("[INFO] %s: %d constituents", index, len(symbols))
	return symbols, nil
}

// symbolColumn extracts the "Symbol" column of the n-th table. Header cells
// and row-header cells are both counted as columns.
func symbolColumn(doc *goquery.Document, n int) ([]string, error) {
	table := doc.Find("table").Eq(n)
	if table.Length() == 0 {
		return nil, fmt.Errorf("table %d not found", n)
	}
	rows := table.Find("tr")

	col := -1
	rows.First().Children().EachWithBreak(func(i int, cell *goquery.Selection) bool {
		if strings.EqualFold(strings.TrimSpace(cell.Text()), "Symbol") {
			col = i
			return false
		}
		return true
	})
	if col < 0 {
		return nil, fmt.Errorf("table %d has no Symbol column", n)
	}

	var symbols []string
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		sym := strings.TrimSpace(row.Children().Eq(col).Text())
		if sym != "" {
			symbols = append(symbols, sym)
		}
	})
	if len(symbols) == 0 {
		return nil, fmt.Errorf("table %d has no symbols", n)
	}
	return symbols, nil
}
