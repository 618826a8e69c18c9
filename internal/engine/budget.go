// Package engine derives balances, progress, savings, health scores and
// spending forecasts from padma state. Every function is pure: it reads
// its arguments, never mutates them and keeps no state between calls.
package engine

import (
	"errors"

	"github.com/theirongolddev/padma/internal/model"
)

// ErrExceedsIncome is returned by CanAllocate when a new allocation would
// push the allocated budget above monthly income.
var ErrExceedsIncome = errors.New("allocation exceeds monthly income")

// BudgetCheck is the advisory result of comparing allocations with income.
type BudgetCheck struct {
	Allocated int64
	Income    int64
	Exceeds   bool
}

// RemainingToSpend is the unspent budget across all spending streams,
// never negative. Goal streams are ignored on both sides.
func RemainingToSpend(streams []model.Stream, txs []model.Transaction) int64 {
	spending := make(map[string]struct{})
	var budget int64
	for _, s := range streams {
		if s.IsGoal {
			continue
		}
		spending[s.ID] = struct{}{}
		budget += s.OriginalAmount
	}

	var spent int64
	for _, t := range txs {
		if _, ok := spending[t.StreamID]; ok {
			spent += t.Amount
		}
	}

	return max(0, budget-spent)
}

// AllocatedBudget sums OriginalAmount over every stream except Savings and Others.
func AllocatedBudget(streams []model.Stream) int64 {
	var total int64
	for _, s := range streams {
		if s.IsSpecial() {
			continue
		}
		total += s.OriginalAmount
	}
	return total
}

// SavingsAmount is income left after allocations (floored at zero) plus
// every amount returned to the Savings goal through a "+" tag.
func SavingsAmount(income int64, streams []model.Stream, txs []model.Transaction) int64 {
	base := max(0, income-AllocatedBudget(streams))

	savings := make(map[string]struct{})
	for _, s := range streams {
		if s.IsGoal && s.Name == model.SavingsStreamName {
			savings[s.ID] = struct{}{}
		}
	}
	if len(savings) == 0 {
		return base
	}

	var returned int64
	for _, t := range txs {
		if _, ok := savings[t.StreamID]; ok && t.HasReturnTag() {
			returned += t.Amount
		}
	}
	return base + returned
}

// StreamSpent sums the amounts recorded against stream.
func StreamSpent(stream model.Stream, txs []model.Transaction) int64 {
	var total int64
	for _, t := range txs {
		if t.StreamID == stream.ID {
			total += t.Amount
		}
	}
	return total
}

// StreamBalance is the cumulative withdrawal for a goal stream and the
// remaining budget for a spending stream. A stream without a budget has
// no balance.
func StreamBalance(stream model.Stream, txs []model.Transaction) int64 {
	if stream.OriginalAmount == 0 {
		return 0
	}
	spent := StreamSpent(stream, txs)
	if stream.IsGoal {
		return spent
	}
	return max(0, stream.OriginalAmount-spent)
}

// StreamProgress is the percentage of the budget consumed (or, for a goal,
// withdrawn), capped at 100.
func StreamProgress(stream model.Stream, txs []model.Transaction) float64 {
	if stream.OriginalAmount <= 0 {
		return 0
	}
	pct := float64(StreamSpent(stream, txs)) / float64(stream.OriginalAmount) * 100
	return min(100, pct)
}

// SavingsRate is SavingsAmount as a percentage of income.
func SavingsRate(state model.AppState) float64 {
	income := state.User.MonthlyIncome
	if income == 0 {
		return 0
	}
	return float64(SavingsAmount(income, state.Streams, state.Transactions)) / float64(income) * 100
}

// TotalSpent sums every transaction, goal withdrawals included.
func TotalSpent(txs []model.Transaction) int64 {
	var total int64
	for _, t := range txs {
		total += t.Amount
	}
	return total
}

// HasExceededBudget reports whether a spending stream has used its whole budget.
func HasExceededBudget(stream model.Stream, txs []model.Transaction) bool {
	if stream.IsGoal {
		return false
	}
	return StreamSpent(stream, txs) >= stream.OriginalAmount
}

// CheckBudgetExceedsIncome compares allocations with income. Only Others is
// excluded here; Savings counts.
func CheckBudgetExceedsIncome(income int64, streams []model.Stream) BudgetCheck {
	var allocated int64
	for _, s := range streams {
		if s.Name == model.OthersStreamName {
			continue
		}
		allocated += s.OriginalAmount
	}
	return BudgetCheck{
		Allocated: allocated,
		Income:    income,
		Exceeds:   allocated > income,
	}
}

// CanAllocate returns ErrExceedsIncome if adding amount to the current
// allocations would exceed income.
func CanAllocate(income int64, streams []model.Stream, amount int64) error {
	if AllocatedBudget(streams)+amount > income {
		return ErrExceedsIncome
	}
	return nil
}
