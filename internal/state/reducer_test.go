package state

import (
	"reflect"
	"testing"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

var fixedNow = time.Date(2025, 2, 3, 8, 30, 0, 0, time.UTC)

func seededState(t *testing.T) model.AppState {
	t.Helper()
	created := fixedNow.AddDate(0, 0, -10)
	s := model.DefaultState(created)
	s.User.MonthlyIncome = 50000
	s.Streams = []model.Stream{
		{ID: "food", Name: "Food", OriginalAmount: 10000, CreatedAt: created, UpdatedAt: created},
		{ID: "fun", Name: "Fun", OriginalAmount: 2000, CreatedAt: created, UpdatedAt: created},
	}
	s.Transactions = []model.Transaction{
		{ID: "t1", StreamID: "food", Amount: 7000, Tags: []string{"weekly"}, Timestamp: created},
		{ID: "t2", StreamID: "fun", Amount: 3000, Timestamp: created},
		{ID: "t3", StreamID: "food", Amount: 2000, Timestamp: created},
	}
	s.Analytics.Insights = []string{"Food is at 90% of its budget"}
	return s
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	actions := []Action{
		SetIncome{Income: 1},
		AddStream{Stream: model.Stream{ID: "new"}},
		UpdateStream{ID: "food", Patch: model.StreamPatch{Name: ptr("Groceries")}},
		DeleteStream{ID: "food"},
		AddTransaction{Transaction: model.Transaction{ID: "t9", StreamID: "fun"}},
		UpdateTransaction{ID: "t1", Patch: model.TransactionPatch{Tags: &[]string{"changed"}}},
		DeleteTransaction{ID: "t2"},
		AddTemplate{Template: model.Template{ID: "tpl"}},
		CompleteOnboarding{},
		ArchiveMonth{Month: "2025-01"},
		SetAnalytics{Analytics: model.Analytics{Insights: []string{"x"}}},
		ResetApp{},
	}

	for _, a := range actions {
		t.Run(a.Type(), func(t *testing.T) {
			in := seededState(t)
			snapshot := in.Clone()

			out := ReduceAt(in, a, fixedNow)

			if !reflect.DeepEqual(in, snapshot) {
				t.Fatalf("%s mutated its input", a.Type())
			}
			if reflect.DeepEqual(out, in) {
				t.Fatalf("%s returned a state equal to its input", a.Type())
			}
		})
	}
}

func TestReduceResultSharesNothing(t *testing.T) {
	in := seededState(t)
	out := ReduceAt(in, SetIncome{Income: 1}, fixedNow)

	out.Streams[0].Name = "x"
	out.Transactions[0].Tags[0] = "x"
	if in.Streams[0].Name != "Food" || in.Transactions[0].Tags[0] != "weekly" {
		t.Fatal("result aliases input slices")
	}
	if out.User.MonthlyIncome != 1 || in.User.MonthlyIncome != 50000 {
		t.Fatalf("income = %d/%d, want 1/50000", out.User.MonthlyIncome, in.User.MonthlyIncome)
	}
}

func TestDeleteStreamCascades(t *testing.T) {
	out := ReduceAt(seededState(t), DeleteStream{ID: "food"}, fixedNow)

	if len(out.Streams) != 1 || out.Streams[0].ID != "fun" {
		t.Fatalf("streams = %+v, want only fun", out.Streams)
	}
	for _, tx := range out.Transactions {
		if tx.StreamID == "food" {
			t.Fatalf("orphan transaction %s left behind", tx.ID)
		}
	}
	if len(out.Transactions) != 1 {
		t.Fatalf("len(transactions) = %d, want 1", len(out.Transactions))
	}
}

func TestUpdateStream(t *testing.T) {
	out := ReduceAt(seededState(t), UpdateStream{
		ID:    "food",
		Patch: model.StreamPatch{OriginalAmount: ptr(int64(12000))},
	}, fixedNow)

	got := out.Streams[0]
	if got.OriginalAmount != 12000 || got.Name != "Food" {
		t.Fatalf("stream = %+v, want amount 12000 and name kept", got)
	}
	if !got.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("UpdatedAt = %v, want %v", got.UpdatedAt, fixedNow)
	}
	if out.Streams[1].UpdatedAt.Equal(fixedNow) {
		t.Fatal("untargeted stream had UpdatedAt refreshed")
	}
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	in := seededState(t)
	out := ReduceAt(in, UpdateStream{ID: "missing", Patch: model.StreamPatch{Name: ptr("x")}}, fixedNow)
	if !reflect.DeepEqual(out, in) {
		t.Fatal("UpdateStream with unknown id changed state")
	}
	out = ReduceAt(in, UpdateTransaction{ID: "missing", Patch: model.TransactionPatch{Amount: ptr(int64(1))}}, fixedNow)
	if !reflect.DeepEqual(out, in) {
		t.Fatal("UpdateTransaction with unknown id changed state")
	}
}

func TestUpdateTransaction(t *testing.T) {
	out := ReduceAt(seededState(t), UpdateTransaction{
		ID:    "t2",
		Patch: model.TransactionPatch{Amount: ptr(int64(1500)), Note: ptr("concert")},
	}, fixedNow)

	got := out.Transactions[1]
	if got.Amount != 1500 || got.Note != "concert" || got.StreamID != "fun" {
		t.Fatalf("transaction = %+v", got)
	}
	if !got.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("UpdatedAt = %v, want %v", got.UpdatedAt, fixedNow)
	}
}

func TestArchiveMonth(t *testing.T) {
	in := seededState(t)
	in.Meta.CurrentMonth = "2025-01"

	out := ReduceAt(in, ArchiveMonth{Month: "2025-01"}, fixedNow)

	a, ok := out.Archives["2025-01"]
	if !ok {
		t.Fatal("archive 2025-01 not stored")
	}
	if a.TotalSpent != 12000 {
		t.Fatalf("TotalSpent = %d, want 12000", a.TotalSpent)
	}
	if a.TransactionCount != len(in.Transactions) {
		t.Fatalf("TransactionCount = %d, want %d", a.TransactionCount, len(in.Transactions))
	}
	if a.TotalIncome != 50000 || len(a.Streams) != 2 || len(a.Insights) != 1 {
		t.Fatalf("archive = %+v", a)
	}
	if out.Meta.CurrentMonth != "2025-02" {
		t.Fatalf("CurrentMonth = %q, want real month 2025-02", out.Meta.CurrentMonth)
	}

	// Later edits do not reach into the archive.
	out = ReduceAt(out, UpdateStream{ID: "food", Patch: model.StreamPatch{Name: ptr("Changed")}}, fixedNow)
	if out.Archives["2025-01"].Streams[0].Name != "Food" {
		t.Fatal("archive streams changed after a later update")
	}
}

func TestResetApp(t *testing.T) {
	out := ReduceAt(seededState(t), ResetApp{}, fixedNow)
	if !reflect.DeepEqual(out, model.DefaultState(fixedNow)) {
		t.Fatalf("ResetApp = %+v, want default state", out)
	}
}

func TestLoadStateReplaces(t *testing.T) {
	payload := model.DefaultState(fixedNow)
	payload.User.MonthlyIncome = 777

	out := ReduceAt(seededState(t), LoadState{State: payload}, fixedNow)
	if !reflect.DeepEqual(out, payload) {
		t.Fatalf("LoadState = %+v, want payload", out)
	}
}

func TestTemplates(t *testing.T) {
	s := ReduceAt(seededState(t), AddTemplate{Template: model.Template{ID: "rent", Name: "Rent", IsActive: true}}, fixedNow)
	s = ReduceAt(s, UpdateTemplate{ID: "rent", Patch: model.TemplatePatch{UsageCount: ptr(3), LastUsed: &fixedNow}}, fixedNow)
	if s.Templates[0].UsageCount != 3 || s.Templates[0].LastUsed == nil {
		t.Fatalf("template = %+v", s.Templates[0])
	}
	s = ReduceAt(s, DeleteTemplate{ID: "rent"}, fixedNow)
	if len(s.Templates) != 0 {
		t.Fatalf("len(templates) = %d, want 0", len(s.Templates))
	}
}

type unknownAction struct{}

func (unknownAction) Type() string { return "SOMETHING_NEW" }

func TestUnknownActionReturnsStateUnchanged(t *testing.T) {
	in := seededState(t)
	out := ReduceAt(in, unknownAction{}, fixedNow)
	if !reflect.DeepEqual(out, in) {
		t.Fatal("unknown action changed state")
	}
}

func ptr[T any](v T) *T { return &v }
