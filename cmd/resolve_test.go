package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

func TestFindStream(t *testing.T) {
	streams := []model.Stream{
		{ID: "aaaa1111-0000", Name: "Food"},
		{ID: "aaaa2222-0000", Name: "Rent"},
		{ID: "bbbb3333-0000", Name: "Savings", IsGoal: true},
	}

	tests := []struct {
		ref     string
		want    string
		wantErr string
	}{
		{"food", "Food", ""},
		{"RENT", "Rent", ""},
		{"bbbb", "Savings", ""},
		{"aaaa2", "Rent", ""},
		{"aaaa", "", "matches 2 streams"},
		{"travel", "", "no stream matches"},
	}
	for _, tt := range tests {
		got, err := findStream(streams, tt.ref)
		if tt.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("findStream(%q) err = %v, want %q", tt.ref, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("findStream(%q) unexpected error: %v", tt.ref, err)
			continue
		}
		if got.Name != tt.want {
			t.Errorf("findStream(%q) = %s, want %s", tt.ref, got.Name, tt.want)
		}
	}
}

func TestFindTransactionAndTemplate(t *testing.T) {
	txs := []model.Transaction{{ID: "1234abcd"}, {ID: "1299ffff"}}
	if _, err := findTransaction(txs, "12"); err == nil {
		t.Fatal("ambiguous prefix accepted")
	}
	if got, err := findTransaction(txs, "1234"); err != nil || got.ID != "1234abcd" {
		t.Fatalf("findTransaction(1234) = %v, %v", got.ID, err)
	}

	tpls := []model.Template{{ID: "tpl-1", Name: "Netflix"}}
	if got, err := findTemplate(tpls, "netflix"); err != nil || got.ID != "tpl-1" {
		t.Fatalf("findTemplate(netflix) = %v, %v", got.ID, err)
	}
	if _, err := findTemplate(tpls, "spotify"); err == nil {
		t.Fatal("unknown template accepted")
	}
}

func TestStreamName(t *testing.T) {
	streams := []model.Stream{{ID: "aaaa1111-2222", Name: "Food"}}
	if got := streamName(streams, "aaaa1111-2222"); got != "Food" {
		t.Fatalf("streamName = %q, want Food", got)
	}
	if got := streamName(streams, "deadbeef-0000-1111"); got != "deadbeef" {
		t.Fatalf("streamName(dangling) = %q, want short id", got)
	}
}

func TestParseMethodAndMood(t *testing.T) {
	if m, err := parseMethod(" UPI "); err != nil || m != model.PaymentUPI {
		t.Fatalf("parseMethod(UPI) = %v, %v", m, err)
	}
	if _, err := parseMethod("cheque"); err == nil {
		t.Fatal("unknown method accepted")
	}
	if m, err := parseMood(""); err != nil || m != "" {
		t.Fatalf("parseMood(\"\") = %v, %v", m, err)
	}
	if m, err := parseMood("Happy"); err != nil || m != model.MoodHappy {
		t.Fatalf("parseMood(Happy) = %v, %v", m, err)
	}
	if _, err := parseMood("ecstatic"); err == nil {
		t.Fatal("unknown mood accepted")
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, time.March, 15, 18, 30, 5, 0, time.UTC)
	got, err := parseDate("2025-03-02", now)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2025, time.March, 2, 18, 30, 5, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("parseDate = %v, want %v", got, want)
	}
	if _, err := parseDate("02/03/2025", now); err == nil {
		t.Fatal("bad layout accepted")
	}
}
