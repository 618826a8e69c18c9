package state

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

type recordingSaver struct {
	saved []model.AppState
	err   error
}

func (r *recordingSaver) Save(s model.AppState) error {
	r.saved = append(r.saved, s)
	return r.err
}

func newTestStore(t *testing.T, saver Saver) *Store {
	t.Helper()
	return NewStore(model.DefaultState(fixedNow),
		WithSaver(saver),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestStoreDispatchSavesAndNotifies(t *testing.T) {
	saver := &recordingSaver{}
	st := newTestStore(t, saver)

	var seen []int64
	unsubscribe := st.Subscribe(func(s model.AppState) {
		seen = append(seen, s.User.MonthlyIncome)
	})

	st.Dispatch(SetIncome{Income: 100})
	st.Dispatch(SetIncome{Income: 200})
	unsubscribe()
	st.Dispatch(SetIncome{Income: 300})

	if len(saver.saved) != 3 {
		t.Fatalf("saved %d states, want 3", len(saver.saved))
	}
	if saver.saved[2].User.MonthlyIncome != 300 {
		t.Fatalf("last saved income = %d, want 300", saver.saved[2].User.MonthlyIncome)
	}
	if len(seen) != 2 || seen[0] != 100 || seen[1] != 200 {
		t.Fatalf("subscriber saw %v, want [100 200]", seen)
	}
	if got := st.State().User.MonthlyIncome; got != 300 {
		t.Fatalf("State income = %d, want 300", got)
	}
}

func TestStoreSaveFailureIsSwallowed(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	st := newTestStore(t, saver)

	got := st.Dispatch(CompleteOnboarding{})
	if !got.User.SetupComplete {
		t.Fatal("state not updated after failed save")
	}
	if !st.State().User.SetupComplete {
		t.Fatal("store lost the transition after failed save")
	}
}

func TestStoreStateIsACopy(t *testing.T) {
	st := newTestStore(t, nil)
	st.Dispatch(AddStream{Stream: model.Stream{ID: "a", Name: "A"}})

	s := st.State()
	s.Streams[0].Name = "mutated"
	if st.State().Streams[0].Name != "A" {
		t.Fatal("State() exposed internal slices")
	}
}
