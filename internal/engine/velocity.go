package engine

import (
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

// Trend classifies the last week of spending against the week before it.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// trendDeadBand is the relative change below which spending counts as stable.
const trendDeadBand = 0.10

// Velocity summarises how fast money is leaving this month.
type Velocity struct {
	DailyAverage float64
	Trend        Trend
	Forecast     float64
	MonthSpent   int64
	LastWeek     int64
	PreviousWeek int64
	DaysElapsed  int
	DaysInMonth  int
}

// SpendingVelocity computes this month's daily average, the week-over-week
// trend and a linear end-of-month forecast as of now.
func SpendingVelocity(txs []model.Transaction, now time.Time) Velocity {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	v := Velocity{
		DaysElapsed: now.Day(),
		DaysInMonth: DaysInMonth(now),
	}

	for _, t := range txs {
		ts := t.Timestamp.In(now.Location())
		if !ts.Before(monthStart) && !ts.After(now) {
			v.MonthSpent += t.Amount
		}
		switch {
		case ts.After(weekAgo) && !ts.After(now):
			v.LastWeek += t.Amount
		case ts.After(twoWeeksAgo) && !ts.After(weekAgo):
			v.PreviousWeek += t.Amount
		}
	}

	v.DailyAverage = float64(v.MonthSpent) / float64(v.DaysElapsed)
	v.Forecast = v.DailyAverage * float64(v.DaysInMonth)
	v.Trend = classifyTrend(v.LastWeek, v.PreviousWeek)
	return v
}

func classifyTrend(last, previous int64) Trend {
	l, p := float64(last), float64(previous)
	switch {
	case l > p*(1+trendDeadBand):
		return TrendIncreasing
	case l < p*(1-trendDeadBand):
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
