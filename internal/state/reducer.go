package state

import (
	"slices"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

// Reduce applies a to s using the wall clock for timestamps.
func Reduce(s model.AppState, a Action) model.AppState {
	return ReduceAt(s, a, time.Now())
}

// ReduceAt applies a to s with now as the current time. The input is never
// mutated; the result shares no mutable data with it.
func ReduceAt(s model.AppState, a Action, now time.Time) model.AppState {
	next := s.Clone()

	switch a := a.(type) {
	case LoadState:
		return a.State.Clone()

	case SetIncome:
		next.User.MonthlyIncome = a.Income

	case SetCurrency:
		next.User.Currency = a.Currency

	case AddStream:
		next.Streams = append(next.Streams, a.Stream)

	case UpdateStream:
		for i, st := range next.Streams {
			if st.ID == a.ID {
				st = a.Patch.Apply(st)
				st.UpdatedAt = now
				next.Streams[i] = st
				break
			}
		}

	case DeleteStream:
		next.Streams = slices.DeleteFunc(next.Streams, func(st model.Stream) bool {
			return st.ID == a.ID
		})
		next.Transactions = slices.DeleteFunc(next.Transactions, func(t model.Transaction) bool {
			return t.StreamID == a.ID
		})

	case AddTransaction:
		t := a.Transaction
		t.Tags = slices.Clone(t.Tags)
		next.Transactions = append(next.Transactions, t)

	case UpdateTransaction:
		for i, t := range next.Transactions {
			if t.ID == a.ID {
				t = a.Patch.Apply(t)
				t.UpdatedAt = now
				next.Transactions[i] = t
				break
			}
		}

	case DeleteTransaction:
		next.Transactions = slices.DeleteFunc(next.Transactions, func(t model.Transaction) bool {
			return t.ID == a.ID
		})

	case AddTemplate:
		tpl := a.Template
		tpl.Tags = slices.Clone(tpl.Tags)
		next.Templates = append(next.Templates, tpl)

	case UpdateTemplate:
		for i, tpl := range next.Templates {
			if tpl.ID == a.ID {
				next.Templates[i] = a.Patch.Apply(tpl)
				break
			}
		}

	case DeleteTemplate:
		next.Templates = slices.DeleteFunc(next.Templates, func(tpl model.Template) bool {
			return tpl.ID == a.ID
		})

	case SetAnalytics:
		next.Analytics = a.Analytics.Clone()

	case CompleteOnboarding:
		next.User.SetupComplete = true

	case ArchiveMonth:
		if next.Archives == nil {
			next.Archives = make(map[string]model.MonthlyArchive)
		}
		next.Archives[a.Month] = archiveOf(next, a.Month, now)
		// The current month moves to the real month, whichever month was archived.
		next.Meta.CurrentMonth = model.MonthKey(now)

	case ResetApp:
		return model.DefaultState(now)

	default:
		return s
	}

	return next
}

// archiveOf builds the snapshot for month from s. s must already be a
// private copy.
func archiveOf(s model.AppState, month string, now time.Time) model.MonthlyArchive {
	var spent int64
	for _, t := range s.Transactions {
		spent += t.Amount
	}

	insights := slices.Clone(s.Analytics.Insights)
	if insights == nil {
		insights = []string{}
	}
	streams := slices.Clone(s.Streams)
	if streams == nil {
		streams = []model.Stream{}
	}

	return model.MonthlyArchive{
		Month:            month,
		TotalIncome:      s.User.MonthlyIncome,
		TotalSpent:       spent,
		Streams:          streams,
		TransactionCount: len(s.Transactions),
		Insights:         insights,
		ArchivedAt:       now,
	}
}
