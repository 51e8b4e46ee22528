package generate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/seedforge/seedforge/pkg/config"
)

func TestTimestampBetweenStaysInBounds(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	for i := 0; i < 1000; i++ {
		ts := timestampBetween(r, start, end)
		if ts.Before(start) || !ts.Before(end) {
			t.Fatalf("timestamp %v outside [%v, %v)", ts, start, end)
		}
	}
}

func TestTimestampBetweenDegenerateRange(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	if got := timestampBetween(r, at, at); !got.Equal(at) {
		t.Fatalf("empty range should return start, got %v", got)
	}
	if got := timestampBetween(r, at, at.Add(-time.Hour)); !got.Equal(at) {
		t.Fatalf("inverted range should return start, got %v", got)
	}
}

func TestDateWindowSpans(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	w := newDateWindow(&config.DateConfig{HistoryMonths: 6, FutureMonths: 3}, now)

	if got := now.Sub(w.historyStart); got != 180*24*time.Hour {
		t.Fatalf("history window should be 180 days, got %v", got)
	}
	if got := w.horizon.Sub(now); got != 90*24*time.Hour {
		t.Fatalf("due-date horizon should be 90 days, got %v", got)
	}
}
