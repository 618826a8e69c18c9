package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

// nearLimitPercent is the progress at which a spending stream is flagged.
const nearLimitPercent = 80.0

// StreamSummary is one presentation row of per-stream figures.
type StreamSummary struct {
	Stream   model.Stream
	Spent    int64
	Balance  int64
	Progress float64
	Exceeded bool
	Health   int
	TxCount  int
}

// StreamSummaries computes a StreamSummary for every stream, in input order.
func StreamSummaries(streams []model.Stream, txs []model.Transaction) []StreamSummary {
	rows := make([]StreamSummary, 0, len(streams))
	for _, s := range streams {
		rows = append(rows, StreamSummary{
			Stream:   s,
			Spent:    StreamSpent(s, txs),
			Balance:  StreamBalance(s, txs),
			Progress: StreamProgress(s, txs),
			Exceeded: HasExceededBudget(s, txs),
			Health:   StreamHealth(s, txs),
			TxCount:  len(model.FilterByStream(txs, s.ID)),
		})
	}
	return rows
}

// MonthlyTrends totals transaction amounts per "YYYY-MM" month.
func MonthlyTrends(txs []model.Transaction) map[string]int64 {
	trends := make(map[string]int64)
	for _, t := range txs {
		trends[model.MonthKey(t.Timestamp)] += t.Amount
	}
	return trends
}

// DayTotal is the amount spent on one calendar day.
type DayTotal struct {
	Date   time.Time
	Amount int64
}

// DailySpend returns one DayTotal per calendar day in [since, until],
// oldest first, with zero-spend days filled in.
func DailySpend(txs []model.Transaction, since, until time.Time) []DayTotal {
	loc := until.Location()
	start := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, loc)
	end := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, loc)

	endExclusive := end.AddDate(0, 0, 1)

	byDay := make(map[string]int64)
	for _, t := range txs {
		ts := t.Timestamp.In(loc)
		if ts.Before(start) || !ts.Before(endExclusive) {
			continue
		}
		byDay[ts.Format("2006-01-02")] += t.Amount
	}

	var days []DayTotal
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, DayTotal{Date: d, Amount: byDay[d.Format("2006-01-02")]})
	}
	return days
}

// Insights produces human-readable observations about the state as of now.
// The output is deterministic for identical inputs.
func Insights(state model.AppState, now time.Time) []string {
	var out []string

	rows := StreamSummaries(state.Streams, state.Transactions)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Progress > rows[j].Progress })

	for _, r := range rows {
		if r.Stream.IsGoal || r.Stream.OriginalAmount == 0 {
			continue
		}
		switch {
		case r.Exceeded:
			out = append(out, fmt.Sprintf("%s has used its entire budget", r.Stream.Name))
		case r.Progress >= nearLimitPercent:
			out = append(out, fmt.Sprintf("%s is at %.0f%% of its budget", r.Stream.Name, r.Progress))
		}
	}

	v := SpendingVelocity(state.Transactions, now)
	switch v.Trend {
	case TrendIncreasing:
		out = append(out, "Spending is up compared to the previous week")
	case TrendDecreasing:
		out = append(out, "Spending is down compared to the previous week")
	}

	remaining := RemainingToSpend(state.Streams, state.Transactions)
	projectedRest := v.DailyAverage * float64(v.DaysInMonth-v.DaysElapsed)
	if v.MonthSpent > 0 && projectedRest > float64(remaining) {
		out = append(out, fmt.Sprintf("At the current pace you will overshoot your remaining budget by %.0f", projectedRest-float64(remaining)))
	}

	if state.User.MonthlyIncome > 0 {
		rate := SavingsRate(state)
		switch {
		case rate >= 20:
			out = append(out, fmt.Sprintf("You are saving %.0f%% of your income", rate))
		case rate == 0:
			out = append(out, "Nothing is left for savings after allocations")
		}
	}

	if check := CheckBudgetExceedsIncome(state.User.MonthlyIncome, state.Streams); check.Exceeds {
		out = append(out, fmt.Sprintf("Allocations exceed income by %d", check.Allocated-check.Income))
	}

	return out
}

// RefreshAnalytics recomputes the analytics cache for state as of now.
func RefreshAnalytics(state model.AppState, now time.Time) model.Analytics {
	calculated := now
	return model.Analytics{
		MonthlyTrends:  MonthlyTrends(state.Transactions),
		Insights:       Insights(state, now),
		LastCalculated: &calculated,
	}
}
