// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
}

// CurrencySymbol returns the display symbol for an ISO currency code, or the
// code followed by a space when no symbol is known.
func CurrencySymbol(code string) string {
	code = strings.ToUpper(code)
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	if code == "" {
		return ""
	}
	return code + " "
}

// FormatMoney formats a whole-unit amount with separators and symbol.
// e.g., (125000, "INR") -> "₹125,000"
func FormatMoney(amount int64, currency string) string {
	sym := CurrencySymbol(currency)
	if amount < 0 {
		return "-" + sym + FormatNumber(-amount)
	}
	return sym + FormatNumber(amount)
}

// FormatCompact formats an amount with K/M/B suffixes for narrow cells.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M"
func FormatCompact(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("%.0fK", float64(n)/1_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPercent formats a 0-100 value as a whole percentage.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// FormatDate formats a timestamp as a short local date, e.g. "Jan 02".
func FormatDate(t time.Time) string {
	return t.Local().Format("Jan 02")
}

// FormatDateTime formats a timestamp for transaction listings.
func FormatDateTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// FormatMonth turns a "YYYY-MM" key into "January 2025". Unparseable keys are
// returned as is.
func FormatMonth(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}

// FormatTags joins tags for display.
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}

// ParseTags splits a comma-separated tag list, trimming blanks.
func ParseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ShortID returns the first 8 characters of an id.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// ParseAmount parses a non-negative whole amount, accepting separators and
// a leading currency symbol, e.g. "₹1,250" or "1250".
func ParseAmount(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimLeftFunc(clean, func(r rune) bool {
		return r != '-' && (r < '0' || r > '9')
	})
	clean = strings.NewReplacer(",", "", "_", "", " ", "").Replace(clean)
	if clean == "" {
		return 0, fmt.Errorf("amount is required")
	}
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return n, nil
}
