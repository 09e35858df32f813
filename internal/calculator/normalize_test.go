package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockScreener/internal/model"
)

func TestNormalize_DropsMissingAndSorts(t *testing.T) {
	raw := []model.RawBar{
		{Time: d(3), Close: f(103)},
		{Time: d(0), Close: f(100)},
		{Time: d(1), Close: nil},
		{Time: d(2), Close: f(math.NaN())},
		{Time: d(4), Close: f(0)},
		{Time: d(5), Close: f(105)},
	}
	s, err := Normalize("AAPL", raw, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{100, 103, 105}
	if s.Len() != len(want) {
		t.Fatalf("expected %d observations, got %d", len(want), s.Len())
	}
	for i, o := range s.Observations {
		if o.Close != want[i] {
			t.Errorf("obs %d: expected close %.0f, got %.0f", i, want[i], o.Close)
		}
		if i > 0 && !o.Date.After(s.Observations[i-1].Date) {
			t.Errorf("obs %d not after obs %d", i, i-1)
		}
	}
	if s.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", s.Symbol)
	}
}

func TestNormalize_DuplicateDateLaterWins(t *testing.T) {
	ny := time.FixedZone("EST", -5*3600)
	raw := []model.RawBar{
		{Time: time.Date(2024, 3, 1, 9, 30, 0, 0, ny), Close: f(100)},
		{Time: time.Date(2024, 3, 4, 9, 30, 0, 0, ny), Close: f(101)},
		{Time: time.Date(2024, 3, 4, 15, 59, 0, 0, ny), Close: f(102)},
	}
	s, err := Normalize("SPY", raw, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 observations, got %d", s.Len())
	}
	if s.Latest().Close != 102 {
		t.Errorf("expected later bar to win, got %.0f", s.Latest().Close)
	}
	if !s.Latest().Date.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected calendar date %v", s.Latest().Date)
	}
}

func TestNormalize_InsufficientData(t *testing.T) {
	tests := []struct {
		name   string
		raw    []model.RawBar
		minLen int
	}{
		{"empty", nil, 0},
		{"all missing", []model.RawBar{{Time: d(0)}, {Time: d(1)}}, 0},
		{"exactly minLen", []model.RawBar{{Time: d(0), Close: f(1)}, {Time: d(1), Close: f(2)}}, 2},
	}
	for _, tt := range tests {
		if _, err := Normalize("X", tt.raw, tt.minLen); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("%s: expected ErrInsufficientData, got %v", tt.name, err)
		}
	}
}

func TestNormalize_MinLenPlusOneSucceeds(t *testing.T) {
	raw := []model.RawBar{{Time: d(0), Close: f(1)}, {Time: d(1), Close: f(2)}, {Time: d(2), Close: f(3)}}
	if _, err := Normalize("X", raw, 2); err != nil {
		t.Errorf("expected success with minLen+1 observations, got %v", err)
	}
}

func TestTrailing(t *testing.T) {
	s := seriesOf("X", 1, 2, 3, 4, 5)
	got, err := Trailing(s, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Len() != 3 || got.Observations[0].Close != 3 {
		t.Errorf("expected last 3 closes starting at 3, got %+v", got.Observations)
	}
	if _, err := Trailing(s, 5); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
