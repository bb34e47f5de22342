package storage

import (
	"testing"
)

func openLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedgerRecordAndTop(t *testing.T) {
	l := openLedger(t)

	runs := []struct {
		score    int
		playTime float64
		kills    int
	}{
		{100, 12.5, 3},
		{50, 4.0, 1},
		{200, 30.25, 7},
		{100, 15.0, 4},
	}
	for _, r := range runs {
		if _, err := l.RecordRun(r.score, r.playTime, r.kills); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := l.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	wantScores := []int{200, 100, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("run %d score = %d, expected %d", i, top[i].Score, want)
		}
	}

	// Equal scores keep recording order
	if top[1].PlayTime != 12.5 || top[2].PlayTime != 15.0 {
		t.Errorf("tie order wrong: %v then %v", top[1].PlayTime, top[2].PlayTime)
	}
	if top[0].Kills != 7 || top[0].PlayTime != 30.25 {
		t.Errorf("best run fields = %+v", top[0])
	}
}

func TestLedgerLimit(t *testing.T) {
	l := openLedger(t)

	for i := 0; i < 15; i++ {
		if _, err := l.RecordRun(i*10, 1, 0); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := l.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}

	// Zero limit falls back to 10
	top, err = l.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(top))
	}
}

func TestLedgerSummary(t *testing.T) {
	l := openLedger(t)

	s, err := l.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if s != (Summary{}) {
		t.Errorf("empty ledger summary = %+v", s)
	}

	l.RecordRun(300, 10, 2)
	l.RecordRun(700, 20, 5)

	s, err = l.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	want := Summary{Runs: 2, Best: 700, Kills: 7, TotalTime: 30}
	if s != want {
		t.Errorf("Summary() = %+v, expected %+v", s, want)
	}
}

func TestLedgersAreIsolated(t *testing.T) {
	a := openLedger(t)
	b := openLedger(t)

	if _, err := a.RecordRun(42, 1, 1); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := b.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("separate ledgers should not share runs, got %d", len(runs))
	}
}

func TestLedgerRecordsID(t *testing.T) {
	l := openLedger(t)

	id1, err := l.RecordRun(1, 1, 0)
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	id2, err := l.RecordRun(2, 1, 0)
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("IDs should increase: %d then %d", id1, id2)
	}

	top, _ := l.TopRuns(1)
	if top[0].ID != id2 {
		t.Errorf("top run ID = %d, expected %d", top[0].ID, id2)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}
