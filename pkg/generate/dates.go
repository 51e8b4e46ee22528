package generate

import (
	"math/rand"
	"time"

	"github.com/seedforge/seedforge/pkg/config"
)

// dateWindow fixes the temporal bounds for one run: a historical window
// behind "now" for creation/join dates and a horizon ahead for due dates.
type dateWindow struct {
	historyStart time.Time
	now          time.Time
	horizon      time.Time
}

func newDateWindow(cfg *config.DateConfig, now time.Time) dateWindow {
	return dateWindow{
		historyStart: now.AddDate(0, 0, -cfg.HistoryMonths*30),
		now:          now,
		horizon:      now.AddDate(0, 0, cfg.FutureMonths*30),
	}
}

// timestampBetween samples a timestamp uniformly in [start, end) at second
// resolution. A degenerate range returns start.
func timestampBetween(r *rand.Rand, start, end time.Time) time.Time {
	seconds := int64(end.Sub(start).Seconds())
	if seconds <= 0 {
		return start
	}
	return start.Add(time.Duration(r.Int63n(seconds)) * time.Second)
}
