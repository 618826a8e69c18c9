package recurring

import (
	"testing"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestCheckers(t *testing.T) {
	created := day(2025, time.January, 31, 9)

	tests := []struct {
		name    string
		checker Checker
		last    time.Time
		now     time.Time
		want    bool
	}{
		{"daily never used", DailyChecker{}, time.Time{}, day(2025, 3, 1, 8), true},
		{"daily same day", DailyChecker{}, day(2025, 3, 1, 7), day(2025, 3, 1, 23), false},
		{"daily next day", DailyChecker{}, day(2025, 3, 1, 23), day(2025, 3, 2, 0), true},

		{"weekly six days", WeeklyChecker{}, day(2025, 3, 1, 12), day(2025, 3, 7, 12), false},
		{"weekly seven days", WeeklyChecker{}, day(2025, 3, 1, 12), day(2025, 3, 8, 12), true},

		{"monthly same month", MonthlyChecker{}, day(2025, 2, 1, 0), day(2025, 2, 28, 0), false},
		{"monthly before anchor", MonthlyChecker{}, day(2025, 3, 31, 0), day(2025, 4, 29, 0), false},
		{"monthly clamped anchor", MonthlyChecker{}, day(2025, 3, 31, 0), day(2025, 4, 30, 0), true},
		{"monthly february clamp", MonthlyChecker{}, day(2025, 1, 31, 0), day(2025, 2, 28, 0), true},
		{"monthly never used", MonthlyChecker{}, time.Time{}, day(2025, 2, 1, 0), true},

		{"yearly same year", YearlyChecker{}, day(2025, 1, 31, 0), day(2025, 12, 31, 0), false},
		{"yearly before month", YearlyChecker{}, day(2025, 1, 31, 0), day(2026, 1, 15, 0), false},
		{"yearly anchor day", YearlyChecker{}, day(2025, 1, 31, 0), day(2026, 1, 31, 0), true},
		{"yearly past month", YearlyChecker{}, day(2025, 1, 31, 0), day(2026, 2, 1, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.checker.IsDue(tt.last, tt.now, created); got != tt.want {
				t.Fatalf("IsDue(%v, %v) = %v, want %v", tt.last, tt.now, got, tt.want)
			}
		})
	}
}

func TestCheckerFor(t *testing.T) {
	for _, f := range []model.Frequency{model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyMonthly, model.FrequencyYearly} {
		if _, err := CheckerFor(f); err != nil {
			t.Errorf("CheckerFor(%s): %v", f, err)
		}
	}
	if _, err := CheckerFor("hourly"); err == nil {
		t.Fatal("CheckerFor(hourly) succeeded")
	}
}
