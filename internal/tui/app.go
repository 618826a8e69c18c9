// Package tui provides the interactive Bubble Tea dashboard for padma.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/model"
	"github.com/theirongolddev/padma/internal/recurring"
	"github.com/theirongolddev/padma/internal/state"
	"github.com/theirongolddev/padma/internal/tui/components"
	"github.com/theirongolddev/padma/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

const (
	tabOverview = iota
	tabStreams
	tabTransactions
	tabRecurring
	tabArchives
)

// App is the root Bubble Tea model.
type App struct {
	store *state.Store
	now   func() time.Time
	st    model.AppState

	// Theme persistence hook, may be nil.
	onTheme func(name string)

	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    [5]int

	form       *huh.Form
	kind       formKind
	onboard    onboardingValues
	onboarding *state.Onboarding
	streamVals streamValues
	txVals     txValues

	message string
}

// Option configures an App.
type Option func(*App)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithThemeHook is called with the theme chosen during onboarding.
func WithThemeHook(fn func(name string)) Option {
	return func(a *App) { a.onTheme = fn }
}

// NewApp creates the dashboard over store. A state that has not finished
// onboarding opens the onboarding form first.
func NewApp(store *state.Store, opts ...Option) App {
	a := App{store: store, now: time.Now}
	for _, opt := range opts {
		opt(&a)
	}
	a.st = store.State()

	if !a.st.User.SetupComplete {
		a.onboard = onboardingValues{currency: a.st.User.Currency, theme: theme.Active.Name}
		a.form = newOnboardingForm(&a.onboard)
		a.kind = formOnboarding
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) dispatch(actions ...state.Action) {
	for _, act := range actions {
		a.st = a.store.Dispatch(act)
	}
	for i := range a.cursor {
		a.cursor[i] = min(a.cursor[i], max(0, a.listLen(i)-1))
	}
}

func (a App) listLen(tab int) int {
	switch tab {
	case tabStreams:
		return len(a.st.Streams)
	case tabTransactions:
		return len(a.st.Transactions)
	case tabRecurring:
		return len(a.st.Templates)
	case tabArchives:
		return len(a.st.Archives)
	}
	return 0
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, 80)).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := components.TabAtX(msg.X, a.activeTab); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			if msg.String() == "esc" && a.kind != formOnboarding && a.kind != formOnboardingStream {
				a.closeForm("cancelled")
				return a, nil
			}
			return a.updateForm(msg)
		}
		return a.updateKeys(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.message = ""

	switch key {
	case "q":
		return a, tea.Quit
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "j", "down":
		a.cursor[a.activeTab] = min(a.cursor[a.activeTab]+1, max(0, a.listLen(a.activeTab)-1))
		return a, nil
	case "k", "up":
		a.cursor[a.activeTab] = max(0, a.cursor[a.activeTab]-1)
		return a, nil
	case "n":
		return a.openTransactionForm()
	case "N":
		return a.openStreamForm()
	case "d":
		a.deleteSelected()
		return a, nil
	case "u":
		if a.activeTab == tabRecurring {
			a.useSelectedTemplate()
		}
		return a, nil
	case "i":
		a.dispatch(state.SetAnalytics{Analytics: engine.RefreshAnalytics(a.st, a.now())})
		a.message = "insights refreshed"
		return a, nil
	case "A":
		month := model.MonthKey(a.now())
		a.dispatch(
			state.SetAnalytics{Analytics: engine.RefreshAnalytics(a.st, a.now())},
			state.ArchiveMonth{Month: month},
		)
		a.message = "archived " + cli.FormatMonth(month)
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if tab := components.TabIdxByKey(msg.Runes[0]); tab >= 0 {
			a.activeTab = tab
		}
	}
	return a, nil
}

func (a App) openTransactionForm() (tea.Model, tea.Cmd) {
	if len(a.st.Streams) == 0 {
		a.message = "add a stream first (N)"
		return a, nil
	}
	a.txVals = txValues{streamID: a.st.Streams[0].ID, method: string(model.PaymentCash)}
	if a.activeTab == tabStreams {
		a.txVals.streamID = a.st.Streams[a.cursor[tabStreams]].ID
	}
	a.form = newTransactionForm(&a.txVals, a.st.Streams, a.st.User.Currency)
	a.kind = formTransaction
	return a, a.sizedForm()
}

func (a App) openStreamForm() (tea.Model, tea.Cmd) {
	a.streamVals = streamValues{}
	a.form = newStreamForm(&a.streamVals, "New stream", nil, false)
	a.kind = formStream
	return a, a.sizedForm()
}

func (a *App) sizedForm() tea.Cmd {
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, 80)).WithHeight(a.height)
	}
	return a.form.Init()
}

func (a *App) closeForm(message string) {
	a.form = nil
	a.kind = formNone
	a.message = message
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.completeForm()
	case huh.StateAborted:
		if a.kind == formOnboarding || a.kind == formOnboardingStream {
			return a, tea.Quit
		}
		a.closeForm("cancelled")
		return a, nil
	}
	return a, cmd
}

func (a App) completeForm() (tea.Model, tea.Cmd) {
	now := a.now()

	switch a.kind {
	case formOnboarding:
		income, _ := cli.ParseAmount(a.onboard.income)
		a.onboarding = &state.Onboarding{Income: income, Currency: a.onboard.currency}
		theme.SetActive(a.onboard.theme)
		if a.onTheme != nil {
			a.onTheme(a.onboard.theme)
		}
		return a.nextOnboardingStream()

	case formOnboardingStream:
		amount, _ := cli.ParseAmount(a.streamVals.amount)
		if _, err := a.onboarding.AddStream(a.streamVals.name, amount, a.streamVals.isGoal, now); err != nil {
			a.message = err.Error()
			return a.nextOnboardingStream()
		}
		if a.streamVals.more {
			return a.nextOnboardingStream()
		}
		a.dispatch(a.onboarding.Actions(now)...)
		a.onboarding = nil
		a.closeForm("you're all set")
		return a, nil

	case formStream:
		amount, _ := cli.ParseAmount(a.streamVals.amount)
		s := model.NewStream(strings.TrimSpace(a.streamVals.name), amount, a.streamVals.isGoal, now)
		a.dispatch(state.AddStream{Stream: s})
		a.closeForm("added stream " + s.Name)
		if check := engine.CheckBudgetExceedsIncome(a.st.User.MonthlyIncome, a.st.Streams); check.Exceeds {
			a.message = fmt.Sprintf("warning: allocations (%s) exceed income (%s)",
				cli.FormatMoney(check.Allocated, a.st.User.Currency),
				cli.FormatMoney(check.Income, a.st.User.Currency))
		}
		return a, nil

	case formTransaction:
		amount, _ := cli.ParseAmount(a.txVals.amount)
		tx := model.NewTransaction(a.txVals.streamID, amount, strings.TrimSpace(a.txVals.note),
			cli.ParseTags(a.txVals.tags), model.PaymentMethod(a.txVals.method), now)
		tx.Mood = model.Mood(a.txVals.mood)
		a.dispatch(state.AddTransaction{Transaction: tx})
		a.closeForm("recorded " + cli.FormatMoney(amount, a.st.User.Currency))
		return a, nil
	}

	a.closeForm("")
	return a, nil
}

func (a App) nextOnboardingStream() (tea.Model, tea.Cmd) {
	ob := a.onboarding
	a.streamVals = streamValues{}
	title := fmt.Sprintf("Allocate your income (%s left)",
		cli.FormatMoney(ob.Unallocated(), ob.Currency))
	check := func(name string, amount int64, isGoal bool) error {
		trial := *ob
		trial.Streams = append([]model.Stream(nil), ob.Streams...)
		_, err := trial.AddStream(name, amount, isGoal, a.now())
		return err
	}
	a.form = newStreamForm(&a.streamVals, title, check, true)
	a.kind = formOnboardingStream
	return a, a.sizedForm()
}

func (a *App) deleteSelected() {
	i := a.cursor[a.activeTab]
	switch a.activeTab {
	case tabTransactions:
		txs := a.sortedTransactions()
		if i < len(txs) {
			a.dispatch(state.DeleteTransaction{ID: txs[i].ID})
			a.message = "deleted transaction"
		}
	case tabStreams:
		if i < len(a.st.Streams) {
			name := a.st.Streams[i].Name
			a.dispatch(state.DeleteStream{ID: a.st.Streams[i].ID})
			a.message = "deleted stream " + name + " and its transactions"
		}
	case tabRecurring:
		if i < len(a.st.Templates) {
			a.dispatch(state.DeleteTemplate{ID: a.st.Templates[i].ID})
			a.message = "deleted template"
		}
	}
}

func (a *App) useSelectedTemplate() {
	i := a.cursor[tabRecurring]
	if i >= len(a.st.Templates) {
		return
	}
	tpl := a.st.Templates[i]
	tx, patch := recurring.Apply(tpl, a.now())
	a.dispatch(state.AddTransaction{Transaction: tx}, state.UpdateTemplate{ID: tpl.ID, Patch: patch})
	a.message = "recorded " + tpl.Name
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  padma needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewForm() string {
	t := theme.Active
	body := a.form.View()
	if a.message != "" {
		body = lipgloss.NewStyle().Foreground(t.Bad).Render("  "+a.message) + "\n\n" + body
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"o s t r a", "Jump to tab"},
		{"← →", "Previous / next tab"},
		{"j k", "Move selection"},
		{"n", "New transaction"},
		{"N", "New stream"},
		{"d", "Delete selection"},
		{"u", "Use selected template"},
		{"i", "Refresh insights"},
		{"A", "Archive this month"},
		{"Esc", "Cancel form"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-10s", bind.key)), descStyle.Render(bind.desc))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, "[n]ew  [N]ew stream  [d]elete  [?]help  [q]uit", a.message)

	contentH := max(minContentHeight, a.height-lipgloss.Height(header)-lipgloss.Height(statusBar))

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverview(cw)
	case tabStreams:
		content = a.renderStreams(cw)
	case tabTransactions:
		content = a.renderTransactions(cw, contentH)
	case tabRecurring:
		content = a.renderRecurring(cw)
	case tabArchives:
		content = a.renderArchives(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.PlaceHorizontal(w, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
