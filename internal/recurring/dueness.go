// Package recurring decides when transaction templates are due and turns
// them into transactions.
package recurring

import (
	"fmt"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

// Checker decides whether a template of one frequency is due.
type Checker interface {
	// IsDue reports whether a template last used at lastUsed (zero if never)
	// and created at createdAt should run at now.
	IsDue(lastUsed, now, createdAt time.Time) bool
}

// DailyChecker is due once per calendar day.
type DailyChecker struct{}

// IsDue returns true if the template was last used before today.
func (DailyChecker) IsDue(lastUsed, now, _ time.Time) bool {
	if lastUsed.IsZero() {
		return true
	}
	return lastUsed.In(now.Location()).Format("2006-01-02") != now.Format("2006-01-02")
}

// WeeklyChecker is due seven days after the last use.
type WeeklyChecker struct{}

// IsDue returns true if 7 or more days have passed since last use.
func (WeeklyChecker) IsDue(lastUsed, now, _ time.Time) bool {
	if lastUsed.IsZero() {
		return true
	}
	return now.Sub(lastUsed) >= 7*24*time.Hour
}

// MonthlyChecker is due once per month, from the day of month the template
// was created on.
type MonthlyChecker struct{}

// IsDue returns true in a month the template has not run in yet once the
// anchor day is reached.
func (MonthlyChecker) IsDue(lastUsed, now, createdAt time.Time) bool {
	if lastUsed.IsZero() {
		return true
	}
	last := lastUsed.In(now.Location())
	if last.Year() == now.Year() && last.Month() == now.Month() {
		return false
	}
	return now.Day() >= anchorDay(createdAt.Day(), now)
}

// YearlyChecker is due once per year, from the month and day the template
// was created on.
type YearlyChecker struct{}

// IsDue returns true in a year the template has not run in yet once the
// anchor date is reached.
func (YearlyChecker) IsDue(lastUsed, now, createdAt time.Time) bool {
	if lastUsed.IsZero() {
		return true
	}
	if lastUsed.In(now.Location()).Year() == now.Year() {
		return false
	}
	switch {
	case now.Month() < createdAt.Month():
		return false
	case now.Month() == createdAt.Month():
		return now.Day() >= anchorDay(createdAt.Day(), now)
	default:
		return true
	}
}

// anchorDay clamps day to the length of now's month, so a template created
// on the 31st runs on the 30th in April.
func anchorDay(day int, now time.Time) int {
	last := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return min(day, last)
}

var checkers = map[model.Frequency]Checker{
	model.FrequencyDaily:   DailyChecker{},
	model.FrequencyWeekly:  WeeklyChecker{},
	model.FrequencyMonthly: MonthlyChecker{},
	model.FrequencyYearly:  YearlyChecker{},
}

// CheckerFor returns the checker for a frequency.
func CheckerFor(freq model.Frequency) (Checker, error) {
	c, ok := checkers[freq]
	if !ok {
		return nil, fmt.Errorf("unknown frequency: %s", freq)
	}
	return c, nil
}
