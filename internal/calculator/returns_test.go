package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestReturns_Example(t *testing.T) {
	rs, err := Returns(seriesOf("T", 100, 102, 101, 105))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{2.0, -0.9804, 3.9604}
	if len(rs.Points) != len(want) {
		t.Fatalf("expected %d returns, got %d", len(want), len(rs.Points))
	}
	for i, p := range rs.Points {
		if got := math.Round(p.Pct*1e4) / 1e4; got != want[i] {
			t.Errorf("return %d: expected %.4f, got %.4f", i, want[i], got)
		}
		if !p.Date.Equal(d(i + 1)) {
			t.Errorf("return %d: expected date %v, got %v", i, d(i+1), p.Date)
		}
	}
	mean, _ := Mean(rs.Values())
	if math.Round(mean*1e4)/1e4 != 1.66 {
		t.Errorf("expected mean 1.6600, got %.4f", mean)
	}
}

func TestReturns_FormulaAndLength(t *testing.T) {
	closes := []float64{50, 51.5, 49.25, 49.25, 60, 58.1}
	s := seriesOf("T", closes...)
	rs, err := Returns(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs.Points) != len(closes)-1 {
		t.Fatalf("expected %d returns, got %d", len(closes)-1, len(rs.Points))
	}
	for i := 1; i < len(closes); i++ {
		want := (closes[i] - closes[i-1]) / closes[i-1] * 100
		if rs.Points[i-1].Pct != want {
			t.Errorf("return %d: expected %v, got %v", i-1, want, rs.Points[i-1].Pct)
		}
	}

	again, _ := Returns(s)
	for i := range rs.Points {
		if math.Float64bits(rs.Points[i].Pct) != math.Float64bits(again.Points[i].Pct) {
			t.Errorf("return %d differs on recompute", i)
		}
	}
}

func TestReturns_InsufficientData(t *testing.T) {
	if _, err := Returns(seriesOf("T", 100)); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
