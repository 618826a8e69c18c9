package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/model"
)

// Onboarding collects the choices of the first-run flow. It is the one place
// where allocating more than the income is refused rather than warned about.
type Onboarding struct {
	Income   int64
	Currency string
	Streams  []model.Stream
}

// AddStream appends a stream unless its budget would push the allocations
// past the income, in which case the error wraps engine.ErrExceedsIncome.
func (o *Onboarding) AddStream(name string, amount int64, isGoal bool, now time.Time) (model.Stream, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Stream{}, fmt.Errorf("stream name is required")
	}
	if _, ok := model.FindStreamByName(o.Streams, name); ok {
		return model.Stream{}, fmt.Errorf("a stream named %q already exists", name)
	}
	if err := engine.CanAllocate(o.Income, o.Streams, amount); err != nil {
		left := max(0, o.Income-engine.AllocatedBudget(o.Streams))
		return model.Stream{}, fmt.Errorf("%w: only %d left to allocate", err, left)
	}
	s := model.NewStream(name, amount, isGoal, now)
	o.Streams = append(o.Streams, s)
	return s, nil
}

// Unallocated is the income not yet given to a stream.
func (o *Onboarding) Unallocated() int64 {
	return max(0, o.Income-engine.AllocatedBudget(o.Streams))
}

// Actions returns the actions that apply the onboarding to a state. A
// Savings goal stream is added when none was created.
func (o *Onboarding) Actions(now time.Time) []Action {
	currency := strings.ToUpper(strings.TrimSpace(o.Currency))
	if currency == "" {
		currency = model.DefaultCurrency
	}

	actions := []Action{
		SetIncome{Income: o.Income},
		SetCurrency{Currency: currency},
	}
	for _, s := range o.Streams {
		actions = append(actions, AddStream{Stream: s})
	}
	if _, ok := model.FindStreamByName(o.Streams, model.SavingsStreamName); !ok {
		actions = append(actions, AddStream{Stream: model.NewStream(model.SavingsStreamName, 0, true, now)})
	}
	return append(actions, CompleteOnboarding{})
}
