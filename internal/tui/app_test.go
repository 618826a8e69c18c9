package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/padma/internal/model"
	"github.com/theirongolddev/padma/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var fixedNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func readyState() model.AppState {
	st := model.DefaultState(fixedNow)
	st.User = model.User{MonthlyIncome: 50000, Currency: "INR", SetupComplete: true}
	food := model.NewStream("Food", 10000, false, fixedNow)
	savings := model.NewStream(model.SavingsStreamName, 0, true, fixedNow)
	st.Streams = []model.Stream{food, savings}

	older := model.NewTransaction(food.ID, 1200, "groceries", nil, model.PaymentCard, fixedNow.Add(-48*time.Hour))
	newer := model.NewTransaction(food.ID, 300, "chai", []string{"snack"}, model.PaymentUPI, fixedNow.Add(-time.Hour))
	st.Transactions = []model.Transaction{older, newer}

	st.Templates = []model.Template{model.NewTemplate("Groceries", food.ID, 2000, model.FrequencyWeekly, fixedNow)}
	return st
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func sized(a App) App {
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func TestNewAppStartsOnboarding(t *testing.T) {
	store := state.NewStore(model.DefaultState(fixedNow), state.WithClock(clock))
	a := NewApp(store, WithClock(clock))
	if a.form == nil || a.kind != formOnboarding {
		t.Fatalf("kind = %v, want onboarding form", a.kind)
	}
}

func TestNewAppSkipsOnboardingWhenSetUp(t *testing.T) {
	a := NewApp(state.NewStore(readyState()), WithClock(clock))
	if a.form != nil {
		t.Fatal("onboarding shown for a set-up user")
	}
}

func TestTabNavigation(t *testing.T) {
	a := NewApp(state.NewStore(readyState()), WithClock(clock))

	a = press(t, a, "t")
	if a.activeTab != tabTransactions {
		t.Fatalf("activeTab = %d, want transactions", a.activeTab)
	}
	a = press(t, a, "right", "right")
	if a.activeTab != tabArchives {
		t.Fatalf("activeTab = %d, want archives", a.activeTab)
	}
	a = press(t, a, "right")
	if a.activeTab != tabOverview {
		t.Fatalf("activeTab = %d, want wrap to overview", a.activeTab)
	}
	a = press(t, a, "left")
	if a.activeTab != tabArchives {
		t.Fatalf("activeTab = %d, want wrap to archives", a.activeTab)
	}
}

func TestDeleteNewestTransaction(t *testing.T) {
	store := state.NewStore(readyState(), state.WithClock(clock))
	a := NewApp(store, WithClock(clock))

	a = press(t, a, "t", "d")
	got := store.State().Transactions
	if len(got) != 1 || got[0].Note != "groceries" {
		t.Fatalf("Transactions = %+v, want only groceries left", got)
	}
	if len(a.st.Transactions) != 1 {
		t.Fatal("app state not refreshed after dispatch")
	}
}

func TestCursorStaysInRange(t *testing.T) {
	a := NewApp(state.NewStore(readyState()), WithClock(clock))
	a = press(t, a, "t", "down", "down", "down")
	if a.cursor[tabTransactions] != 1 {
		t.Fatalf("cursor = %d, want 1", a.cursor[tabTransactions])
	}
	a = press(t, a, "d")
	if a.cursor[tabTransactions] != 0 {
		t.Fatalf("cursor after delete = %d, want 0", a.cursor[tabTransactions])
	}
}

func TestUseTemplate(t *testing.T) {
	store := state.NewStore(readyState(), state.WithClock(clock))
	a := NewApp(store, WithClock(clock))

	a = press(t, a, "r", "u")
	st := store.State()
	if len(st.Transactions) != 3 {
		t.Fatalf("Transactions = %d, want 3", len(st.Transactions))
	}
	last := st.Transactions[2]
	if !last.IsRecurring || last.Amount != 2000 {
		t.Fatalf("recorded tx = %+v", last)
	}
	if st.Templates[0].UsageCount != 1 {
		t.Fatalf("UsageCount = %d, want 1", st.Templates[0].UsageCount)
	}
	if !strings.Contains(a.message, "Groceries") {
		t.Fatalf("message = %q", a.message)
	}
}

func TestArchiveKey(t *testing.T) {
	store := state.NewStore(readyState(), state.WithClock(clock))
	a := NewApp(store, WithClock(clock))
	_ = press(t, a, "A")

	ar, ok := store.State().Archives["2025-03"]
	if !ok {
		t.Fatal("no archive for 2025-03")
	}
	if ar.TotalSpent != 1500 || ar.TransactionCount != 2 {
		t.Fatalf("archive = %+v", ar)
	}
}

func TestNewTransactionNeedsStream(t *testing.T) {
	st := readyState()
	st.Streams = []model.Stream{}
	st.Transactions = []model.Transaction{}
	a := NewApp(state.NewStore(st), WithClock(clock))

	a = press(t, a, "n")
	if a.form != nil {
		t.Fatal("transaction form opened without streams")
	}
	if a.message == "" {
		t.Fatal("no hint shown")
	}
}

func TestOpenAndCancelForm(t *testing.T) {
	a := sized(NewApp(state.NewStore(readyState()), WithClock(clock)))
	a = press(t, a, "n")
	if a.kind != formTransaction {
		t.Fatalf("kind = %v, want transaction form", a.kind)
	}
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = m.(App)
	if a.form != nil || a.message != "cancelled" {
		t.Fatalf("form = %v, message = %q", a.form, a.message)
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a := sized(NewApp(state.NewStore(readyState()), WithClock(clock)))
	want := []string{"Income", "Food", "chai", "Groceries", "No archived months"}
	for i, w := range want {
		a.activeTab = i
		out := ansi.Strip(a.View())
		if !strings.Contains(out, w) {
			t.Fatalf("tab %d view missing %q:\n%s", i, w, out)
		}
		if h := lipgloss.Height(out); h > 40 {
			t.Fatalf("tab %d view height = %d, want <= 40", i, h)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	a := sized(NewApp(state.NewStore(readyState()), WithClock(clock)))
	a = press(t, a, "?")
	if !a.showHelp || !strings.Contains(ansi.Strip(a.View()), "Keyboard shortcuts") {
		t.Fatal("help not shown")
	}
	a = press(t, a, "x")
	if a.showHelp {
		t.Fatal("help not dismissed")
	}
}
