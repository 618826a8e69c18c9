package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/padma/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestLayoutRow(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{100, 3}, {81, 4}, {7, 7}, {5, 1}} {
		widths := LayoutRow(tc.total, tc.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total || len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) = %v", tc.total, tc.n, widths)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow(_, 0) should be nil")
	}
}

func TestCardRowEqualHeights(t *testing.T) {
	theme.SetActive("lotus")

	short := ContentCard("Short", "one", 22, false)
	tall := ContentCard("Tall", "1\n2\n3\n4\n5", 22, true)

	joined := CardRow([]string{tall, short})
	if got, want := lipgloss.Height(joined), lipgloss.Height(tall); got != want {
		t.Fatalf("joined height = %d, want %d", got, want)
	}
	lines := strings.Split(joined, "\n")
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 44 {
			t.Fatalf("line %d width = %d, want 44", i, w)
		}
	}
}

func TestMetricRowWidth(t *testing.T) {
	row := MetricRow([]Metric{
		{Label: "Income", Value: "₹50,000"},
		{Label: "Remaining", Value: "₹12,000", Note: "of ₹30,000"},
		{Label: "Savings", Value: "₹20,000"},
	}, 90)
	for i, l := range strings.Split(row, "\n") {
		if w := lipgloss.Width(l); w != 90 {
			t.Fatalf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('t'); got != 2 {
		t.Fatalf("TabIdxByKey('t') = %d, want 2", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Fatalf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestTabAtXMatchesRenderedBar(t *testing.T) {
	for active := range Tabs {
		bar := RenderTabBar(active, 200)
		pos := 0
		for i := range Tabs {
			w := TabWidth(i, active)
			if got := TabAtX(pos+w/2, active); got != i {
				t.Fatalf("active=%d: TabAtX(%d) = %d, want %d", active, pos+w/2, got, i)
			}
			pos += w + 1
		}
		if used := pos - 1; used > lipgloss.Width(bar) {
			t.Fatalf("tabs use %d columns, bar is %d", used, lipgloss.Width(bar))
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := ansi.Strip(Sparkline([]int64{0, 7, 14}, theme.Active.Accent)); got != "▁▄█" {
		t.Fatalf("Sparkline = %q", got)
	}
}

func TestHorizontalBars(t *testing.T) {
	out := HorizontalBars([]Bar{
		{Label: "Food", Value: 100, Text: "₹100"},
		{Label: "Fun", Value: 50, Text: "₹50"},
	}, 30)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if strings.Count(lines[0], "█") != 2*strings.Count(lines[1], "█") {
		t.Fatalf("bars not proportional:\n%s", out)
	}
}

func TestBudgetBarClamps(t *testing.T) {
	if got := ansi.Strip(BudgetBar(250, 10)); !strings.HasSuffix(got, "100%") {
		t.Fatalf("BudgetBar(250) = %q, want clamped to 100%%", got)
	}
}
