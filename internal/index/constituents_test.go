package index

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sp500Page = `<html><body>
<table class="wikitable" id="constituents">
<tr><th>Symbol</th><th>Security</th><th>GICS Sector</th></tr>
<tr><td><a href="#">MMM</a></td><td>3M</td><td>Industrials</td></tr>
<tr><td><a href="#">AOS</a></td><td>A. O. Smith</td><td>Industrials</td></tr>
<tr><td> ABT </td><td>Abbott</td><td>Health Care</td></tr>
</table>
<table class="wikitable"><tr><th>Date</th><th>Added</th></tr></table>
</body></html>`

const djiaPage = `<html><body>
<table class="infobox"><tr><th>Foundation</th><td>1896</td></tr></table>
<table class="wikitable" id="constituents">
<tr><th>Company</th><th>Exchange</th><th>Symbol</th><th>Industry</th></tr>
<tr><th><a href="#">3M</a></th><td>NYSE</td><td>MMM</td><td>Conglomerate</td></tr>
<tr><th><a href="#">Amazon</a></th><td>NASDAQ</td><td>AMZN</td><td>Retailing</td></tr>
</table>
</body></html>`

func newTestLister(t *testing.T) (*Lister, string) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/sp500", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte(sp500Page)) })
	mux.HandleFunc("/djia", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte(djiaPage)) })
	mux.HandleFunc("/broken", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) })
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewLister(srv.URL+"/sp500", srv.URL+"/djia", ""), srv.URL
}

func TestConstituents(t *testing.T) {
	l, _ := newTestLister(t)
	tests := []struct {
		index string
		want  []string
	}{
		{SP500, []string{"MMM", "AOS", "ABT"}},
		{DJIA, []string{"MMM", "AMZN"}},
	}
	for _, tt := range tests {
		got, err := l.Constituents(context.Background(), tt.index)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.index, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.index, tt.want, got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s[%d]: expected %s, got %s", tt.index, i, tt.want[i], got[i])
			}
		}
	}
}

func TestConstituents_Errors(t *testing.T) {
	l, base := newTestLister(t)
	if _, err := l.Constituents(context.Background(), "FTSE"); !errors.Is(err, ErrUnknownIndex) {
		t.Errorf("expected ErrUnknownIndex, got %v", err)
	}

	l.Sources[SP500] = Source{URL: base + "/sp500", Table: 1}
	if _, err := l.Constituents(context.Background(), SP500); err == nil {
		t.Error("expected error for a table without a Symbol column")
	}

	l.Sources[DJIA] = Source{URL: base + "/broken", Table: 1}
	if _, err := l.Constituents(context.Background(), DJIA); err == nil {
		t.Error("expected error for a non-200 response")
	}
}
