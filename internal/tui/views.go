package tui

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/model"
	"github.com/theirongolddev/padma/internal/recurring"
	"github.com/theirongolddev/padma/internal/tui/components"
	"github.com/theirongolddev/padma/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) money(n int64) string {
	return cli.FormatMoney(n, a.st.User.Currency)
}

func (a App) renderOverview(cw int) string {
	t := theme.Active
	now := a.now()
	st := a.st

	remaining := engine.RemainingToSpend(st.Streams, st.Transactions)
	savings := engine.SavingsAmount(st.User.MonthlyIncome, st.Streams, st.Transactions)
	spent := engine.TotalSpent(st.Transactions)
	check := engine.CheckBudgetExceedsIncome(st.User.MonthlyIncome, st.Streams)

	allocated := components.Metric{
		Label: "Allocated",
		Value: a.money(check.Allocated),
		Note:  "of " + a.money(check.Income),
	}
	if check.Exceeds {
		allocated.Color = t.Bad
		allocated.Note = "exceeds income"
	}

	metrics := components.MetricRow([]components.Metric{
		{Label: "Income", Value: a.money(st.User.MonthlyIncome)},
		allocated,
		{Label: "Remaining", Value: a.money(remaining), Color: t.Good},
		{Label: "Spent", Value: a.money(spent)},
		{Label: "Savings", Value: a.money(savings), Color: t.Goal,
			Note: cli.FormatPercent(engine.SavingsRate(st)) + " of income"},
	}, cw)

	v := engine.SpendingVelocity(st.Transactions, now)
	trendColor := t.TextPrimary
	switch v.Trend {
	case engine.TrendIncreasing:
		trendColor = t.Warn
	case engine.TrendDecreasing:
		trendColor = t.Good
	}
	days := engine.DailySpend(st.Transactions, now.AddDate(0, 0, -29), now)
	amounts := make([]int64, len(days))
	for i, d := range days {
		amounts[i] = d.Amount
	}

	widths := components.LayoutRow(cw, 2)
	velocity := strings.Join([]string{
		fmt.Sprintf("Daily average  %s", a.money(int64(v.DailyAverage))),
		fmt.Sprintf("Forecast       %s", a.money(int64(v.Forecast))),
		"Trend          " + lipgloss.NewStyle().Foreground(trendColor).Render(string(v.Trend)),
		"",
		"Last 30 days   " + components.Sparkline(amounts, t.Accent),
	}, "\n")

	insights := st.Analytics.Insights
	if len(insights) == 0 {
		insights = engine.Insights(st, now)
	}
	var ib strings.Builder
	inner := components.CardInnerWidth(widths[1])
	for _, line := range insights {
		ib.WriteString("• " + truncStr(line, inner-2) + "\n")
	}
	if len(insights) == 0 {
		ib.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("Nothing to report yet"))
	}

	row := components.CardRow([]string{
		components.ContentCard("Velocity", velocity, widths[0], false),
		components.ContentCard("Insights", strings.TrimRight(ib.String(), "\n"), widths[1], false),
	})

	bars := make([]components.Bar, 0, len(st.Streams))
	for _, r := range engine.StreamSummaries(st.Streams, st.Transactions) {
		color := t.ForPercent(r.Progress)
		if r.Stream.IsGoal {
			color = t.Goal
		}
		bars = append(bars, components.Bar{Label: r.Stream.Name, Value: r.Spent, Text: a.money(r.Spent), Color: color})
	}
	spend := components.ContentCard("Spent per stream",
		components.HorizontalBars(bars, components.CardInnerWidth(cw)), cw, false)
	if len(bars) == 0 {
		spend = components.ContentCard("Spent per stream", "No streams yet. Press N to add one.", cw, false)
	}

	return lipgloss.JoinVertical(lipgloss.Left, metrics, row, spend)
}

func (a App) renderStreams(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)
	rows := engine.StreamSummaries(a.st.Streams, a.st.Transactions)
	if len(rows) == 0 {
		return components.ContentCard("Streams", "No streams yet. Press N to add one.", cw, true)
	}

	nameW := 14
	barW := max(10, inner-nameW-44)
	selected := lipgloss.NewStyle().Background(t.SurfaceHover)

	var b strings.Builder
	header := fmt.Sprintf("%-*s %12s %12s  %-*s  %s", nameW, "Stream", "Budget", "Balance", barW+5, "Used", "Health")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render(header) + "\n")
	for i, r := range rows {
		bar := components.BudgetBar(r.Progress, barW)
		if r.Stream.IsGoal {
			bar = components.GoalBar(r.Progress, barW)
		}
		name := truncStr(r.Stream.Name, nameW)
		if r.Stream.IsGoal {
			name = truncStr("◎ "+r.Stream.Name, nameW)
		}
		line := fmt.Sprintf("%-*s %12s %12s  %s  %s",
			nameW, name, a.money(r.Stream.OriginalAmount), a.money(r.Balance), bar, components.HealthBadge(r.Health))
		if i == a.cursor[tabStreams] {
			line = selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return components.ContentCard("Streams", strings.TrimRight(b.String(), "\n"), cw, true)
}

// sortedTransactions returns transactions newest first.
func (a App) sortedTransactions() []model.Transaction {
	txs := slices.Clone(a.st.Transactions)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Timestamp.After(txs[j].Timestamp) })
	return txs
}

func (a App) renderTransactions(cw, h int) string {
	t := theme.Active
	txs := a.sortedTransactions()
	if len(txs) == 0 {
		return components.ContentCard("Transactions", "No transactions yet. Press n to record one.", cw, true)
	}

	names := make(map[string]string, len(a.st.Streams))
	for _, s := range a.st.Streams {
		names[s.ID] = s.Name
	}

	// Card border, title and header take four lines.
	visible := max(1, h-4)
	cur := a.cursor[tabTransactions]
	offset := max(0, cur-visible+1)

	inner := components.CardInnerWidth(cw)
	noteW := max(8, inner-62)
	selected := lipgloss.NewStyle().Background(t.SurfaceHover)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(muted.Render(fmt.Sprintf("%-16s %-12s %12s  %-6s %-*s %s", "When", "Stream", "Amount", "Via", noteW, "Note", "Tags")) + "\n")
	for i := offset; i < len(txs) && i < offset+visible; i++ {
		tx := txs[i]
		stream := names[tx.StreamID]
		if stream == "" {
			stream = "?"
		}
		line := fmt.Sprintf("%-16s %-12s %12s  %-6s %-*s %s",
			cli.FormatDateTime(tx.Timestamp), truncStr(stream, 12), a.money(tx.Amount),
			tx.PaymentMethod, noteW, truncStr(tx.Note, noteW), cli.FormatTags(tx.Tags))
		if tx.IsRecurring {
			line += muted.Render(" ↻")
		}
		if i == cur {
			line = selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	title := fmt.Sprintf("Transactions (%d)", len(txs))
	return components.ContentCard(title, strings.TrimRight(b.String(), "\n"), cw, true)
}

func (a App) renderRecurring(cw int) string {
	t := theme.Active
	if len(a.st.Templates) == 0 {
		return components.ContentCard("Recurring", "No templates. Create one with `padma template add`.", cw, true)
	}

	now := a.now()
	selected := lipgloss.NewStyle().Background(t.SurfaceHover)
	due := lipgloss.NewStyle().Foreground(t.Warn).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(muted.Render(fmt.Sprintf("%-18s %12s  %-8s %6s  %-10s %s", "Template", "Amount", "Every", "Used", "Last", "")) + "\n")
	for i, tpl := range a.st.Templates {
		last := "never"
		if tpl.LastUsed != nil {
			last = cli.FormatDate(*tpl.LastUsed)
		}
		status := ""
		switch {
		case !tpl.IsActive:
			status = muted.Render("paused")
		case recurring.IsDue(tpl, now):
			status = due.Render("due")
		}
		line := fmt.Sprintf("%-18s %12s  %-8s %6d  %-10s %s",
			truncStr(tpl.Name, 18), a.money(tpl.Amount), tpl.Frequency, tpl.UsageCount, last, status)
		if i == a.cursor[tabRecurring] {
			line = selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + muted.Render("u: record selected template now"))
	return components.ContentCard("Recurring", b.String(), cw, true)
}

func (a App) renderArchives(cw int) string {
	t := theme.Active
	if len(a.st.Archives) == 0 {
		return components.ContentCard("Archives", "No archived months. Press A to archive this month.", cw, true)
	}

	months := make([]string, 0, len(a.st.Archives))
	for m := range a.st.Archives {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	selected := lipgloss.NewStyle().Background(t.SurfaceHover)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(muted.Render(fmt.Sprintf("%-16s %12s %12s %8s %8s", "Month", "Income", "Spent", "Streams", "Txns")) + "\n")
	for i, m := range months {
		ar := a.st.Archives[m]
		line := fmt.Sprintf("%-16s %12s %12s %8d %8d",
			cli.FormatMonth(m), a.money(ar.TotalIncome), a.money(ar.TotalSpent), len(ar.Streams), ar.TransactionCount)
		if i == a.cursor[tabArchives] {
			line = selected.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if cur := a.cursor[tabArchives]; cur < len(months) {
		ar := a.st.Archives[months[cur]]
		for _, ins := range ar.Insights {
			b.WriteString("\n• " + ins)
		}
	}
	return components.ContentCard("Archives", strings.TrimRight(b.String(), "\n"), cw, true)
}
