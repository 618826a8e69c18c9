package engine

import (
	"testing"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

func TestSpendingVelocity(t *testing.T) {
	txs := []model.Transaction{
		at("s", 300, "", time.Date(2025, 1, 19, 10, 0, 0, 0, time.UTC)),
		at("s", 100, "", time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)),
		at("s", 1000, "", time.Date(2024, 12, 31, 10, 0, 0, 0, time.UTC)),
	}

	v := SpendingVelocity(txs, fixedNow)
	if v.MonthSpent != 400 {
		t.Fatalf("MonthSpent = %d, want 400", v.MonthSpent)
	}
	if v.DailyAverage != 20 {
		t.Fatalf("DailyAverage = %.2f, want 20", v.DailyAverage)
	}
	if v.Forecast != 620 {
		t.Fatalf("Forecast = %.2f, want 620", v.Forecast)
	}
	if v.LastWeek != 300 || v.PreviousWeek != 100 {
		t.Fatalf("weeks = %d/%d, want 300/100", v.LastWeek, v.PreviousWeek)
	}
	if v.Trend != TrendIncreasing {
		t.Fatalf("Trend = %s, want increasing", v.Trend)
	}
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		last, prev int64
		want       Trend
	}{
		{0, 0, TrendStable},
		{100, 95, TrendStable},
		{100, 91, TrendStable},
		{111, 100, TrendIncreasing},
		{89, 100, TrendDecreasing},
		{50, 0, TrendIncreasing},
		{0, 50, TrendDecreasing},
	}
	for _, tt := range tests {
		if got := classifyTrend(tt.last, tt.prev); got != tt.want {
			t.Errorf("classifyTrend(%d, %d) = %s, want %s", tt.last, tt.prev, got, tt.want)
		}
	}
}

func TestSpendingVelocityEmpty(t *testing.T) {
	v := SpendingVelocity(nil, fixedNow)
	if v.DailyAverage != 0 || v.Forecast != 0 || v.Trend != TrendStable {
		t.Fatalf("empty velocity = %+v, want zeros and stable", v)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		t    time.Time
		want int
	}{
		{time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.t); got != tt.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tt.t.Format("2006-01"), got, tt.want)
		}
	}
}
