package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Streams",
		Headers: []string{"Name", "Budget"},
		Rows: [][]string{
			{"Food", "₹10,000"},
			SeparatorRow,
			{"Total", "₹10,000"},
		},
	})

	lines := strings.Split(strings.TrimRight(ansi.Strip(out), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Streams") {
		t.Fatalf("title line = %q", lines[0])
	}
	if lines[1] != "╭───────┬─────────╮" {
		t.Fatalf("top border = %q", lines[1])
	}
	if lines[4] != "│ Food  │ ₹10,000 │" {
		t.Fatalf("data row = %q", lines[4])
	}
	for _, l := range lines[1:] {
		if w := lipgloss.Width(l); w != lipgloss.Width(lines[1]) {
			t.Fatalf("line %q has width %d, want %d", l, w, lipgloss.Width(lines[1]))
		}
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Fatalf("RenderTable(empty) = %q", got)
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "░░░░░░░░░░"},
		{50, "█████░░░░░"},
		{100, "██████████"},
		{250, "██████████"},
	}
	for _, tt := range tests {
		if got := ansi.Strip(RenderProgressBar(tt.pct, 10)); got != tt.want {
			t.Errorf("RenderProgressBar(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := ansi.Strip(RenderSparkline([]int64{0, 7, 14})); got != "▁▄█" {
		t.Fatalf("RenderSparkline = %q", got)
	}
	if got := ansi.Strip(RenderSparkline([]int64{0, 0})); got != "▁▁" {
		t.Fatalf("RenderSparkline(zeros) = %q", got)
	}
}
