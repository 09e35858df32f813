package calculator

import (
	"errors"
	"testing"

	"StockScreener/internal/model"
)

func TestSnapshots(t *testing.T) {
	s := seriesOf("T", 80, 90, 100, 95, 110)
	rs, _ := Returns(s)
	latestReturn := rs.Points[len(rs.Points)-1].Pct

	snaps, err := Snapshots(s, latestReturn, []model.Horizon{
		{Label: "Prior Day", Offset: 1},
		{Label: "Three Back", Offset: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}

	pd := snaps[0]
	if pd.Label != "Prior Day" || pd.Price != 95 || !pd.ReferenceDate.Equal(d(3)) {
		t.Errorf("unexpected prior day snapshot: %+v", pd)
	}
	if pd.DeltaPct != latestReturn {
		t.Errorf("prior day delta %v should equal latest return %v", pd.DeltaPct, latestReturn)
	}
	if !approx(pd.DeltaPct, (110.0-95)/95*100, 1e-12) {
		t.Errorf("unexpected prior day delta %v", pd.DeltaPct)
	}

	tb := snaps[1]
	if tb.Price != 90 || !tb.ReferenceDate.Equal(d(1)) {
		t.Errorf("unexpected snapshot: %+v", tb)
	}
	if !approx(tb.DeltaPct, 200.0/9, 1e-9) {
		t.Errorf("expected delta 22.22, got %v", tb.DeltaPct)
	}
}

func TestSnapshots_HorizonBoundary(t *testing.T) {
	s := seriesOf("T", 10, 11, 12, 13)

	snaps, err := Snapshots(s, 0, []model.Horizon{{Label: "oldest", Offset: s.Len() - 1}})
	if err != nil {
		t.Fatalf("horizon len-1 should succeed: %v", err)
	}
	if snaps[0].Price != 10 {
		t.Errorf("expected oldest close 10, got %v", snaps[0].Price)
	}

	if _, err := Snapshots(s, 0, []model.Horizon{{Label: "too far", Offset: s.Len()}}); !errors.Is(err, ErrHorizonOutOfRange) {
		t.Errorf("horizon len: expected ErrHorizonOutOfRange, got %v", err)
	}
	if _, err := Snapshots(s, 0, []model.Horizon{{Label: "neg", Offset: -1}}); !errors.Is(err, ErrHorizonOutOfRange) {
		t.Errorf("negative horizon: expected ErrHorizonOutOfRange, got %v", err)
	}
}

func TestSnapshots_ValidatesAllBeforeExtracting(t *testing.T) {
	s := seriesOf("T", 10, 11, 12)
	snaps, err := Snapshots(s, 0, []model.Horizon{{Label: "ok", Offset: 1}, {Label: "bad", Offset: 9}})
	if !errors.Is(err, ErrHorizonOutOfRange) {
		t.Fatalf("expected ErrHorizonOutOfRange, got %v", err)
	}
	if snaps != nil {
		t.Errorf("expected no partial snapshots, got %+v", snaps)
	}
}

func TestStandardHorizons(t *testing.T) {
	hs := StandardHorizons(90)
	if len(hs) != 3 {
		t.Fatalf("expected 3 horizons, got %d", len(hs))
	}
	if hs[0].Offset != 1 || hs[1].Offset != PriorMonthDays || hs[2].Offset != 90 {
		t.Errorf("unexpected offsets: %+v", hs)
	}
	if hs[2].Label != "90 Days Prior" {
		t.Errorf("unexpected label %q", hs[2].Label)
	}
	if MaxOffset(hs) != 90 {
		t.Errorf("expected max offset 90, got %d", MaxOffset(hs))
	}
}
