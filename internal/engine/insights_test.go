package engine

import (
	"slices"
	"testing"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

func TestInsights(t *testing.T) {
	state := model.DefaultState(fixedNow)
	state.User.MonthlyIncome = 10000
	state.Streams = []model.Stream{
		stream("food", "Food", 2000, false),
		stream("fun", "Fun", 1000, false),
		stream("rent", "Rent", 8000, false),
	}
	state.Transactions = []model.Transaction{
		at("food", 1700, "groceries", fixedNow.AddDate(0, 0, -1)),
		at("fun", 1200, "", fixedNow.AddDate(0, 0, -2)),
	}

	got := Insights(state, fixedNow)

	for _, want := range []string{
		"Fun has used its entire budget",
		"Food is at 85% of its budget",
		"Spending is up compared to the previous week",
		"Nothing is left for savings after allocations",
		"Allocations exceed income by 1000",
	} {
		if !slices.Contains(got, want) {
			t.Errorf("Insights missing %q; got %q", want, got)
		}
	}
	if got[0] != "Fun has used its entire budget" {
		t.Errorf("Insights[0] = %q, want highest-progress stream first", got[0])
	}
}

func TestMonthlyTrends(t *testing.T) {
	txs := []model.Transaction{
		at("a", 100, "", time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)),
		at("a", 50, "", time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)),
		at("b", 70, "", time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)),
	}
	got := MonthlyTrends(txs)
	if got["2025-01"] != 150 || got["2024-12"] != 70 || len(got) != 2 {
		t.Fatalf("MonthlyTrends = %v, want 2025-01:150 2024-12:70", got)
	}
}

func TestDailySpend(t *testing.T) {
	since := fixedNow.AddDate(0, 0, -2)
	txs := []model.Transaction{
		at("a", 100, "", fixedNow),
		at("a", 40, "", fixedNow.Add(-30*time.Minute)),
		at("a", 60, "", fixedNow.AddDate(0, 0, -2)),
		at("a", 999, "", fixedNow.AddDate(0, 0, -7)),
	}

	days := DailySpend(txs, since, fixedNow)
	if len(days) != 3 {
		t.Fatalf("len(days) = %d, want 3", len(days))
	}
	want := []int64{60, 0, 140}
	for i, d := range days {
		if d.Amount != want[i] {
			t.Errorf("day %d (%s) = %d, want %d", i, d.Date.Format("2006-01-02"), d.Amount, want[i])
		}
	}
}

func TestStreamSummaries(t *testing.T) {
	streams := []model.Stream{stream("food", "Food", 1000, false), stream("g", "Trip", 0, true)}
	txs := []model.Transaction{at("food", 250, "x", fixedNow)}

	rows := StreamSummaries(streams, txs)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Spent != 250 || rows[0].Balance != 750 || rows[0].Progress != 25 || rows[0].TxCount != 1 {
		t.Fatalf("rows[0] = %+v", rows[0])
	}
	if rows[1].Exceeded {
		t.Fatal("goal row reported exceeded")
	}
}

func TestRefreshAnalytics(t *testing.T) {
	state := model.DefaultState(fixedNow)
	state.Transactions = []model.Transaction{at("a", 10, "", fixedNow)}
	a := RefreshAnalytics(state, fixedNow)
	if a.LastCalculated == nil || !a.LastCalculated.Equal(fixedNow) {
		t.Fatalf("LastCalculated = %v, want %v", a.LastCalculated, fixedNow)
	}
	if a.MonthlyTrends["2025-01"] != 10 {
		t.Fatalf("MonthlyTrends = %v", a.MonthlyTrends)
	}
}
