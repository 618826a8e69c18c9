package chart

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/model"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestStreamSpendPNG(t *testing.T) {
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	food := model.NewStream("Food", 10000, false, now)
	fun := model.NewStream("Fun", 2000, false, now)
	rows := []engine.StreamSummary{
		{Stream: food, Spent: 8500, Progress: 85},
		{Stream: fun, Spent: 2500, Progress: 100, Exceeded: true},
	}

	var buf bytes.Buffer
	if err := StreamSpend(&buf, rows, "INR", Size{}); err != nil {
		t.Fatalf("StreamSpend: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatalf("output is not a PNG (%d bytes)", buf.Len())
	}
}

func TestDailySpendPNG(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := []engine.DayTotal{
		{Date: start, Amount: 0},
		{Date: start.AddDate(0, 0, 1), Amount: 450},
		{Date: start.AddDate(0, 0, 2), Amount: 1200},
	}

	var buf bytes.Buffer
	if err := DailySpend(&buf, days, "USD", Size{Width: 600, Height: 300}); err != nil {
		t.Fatalf("DailySpend: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatal("output is not a PNG")
	}
}

func TestNoData(t *testing.T) {
	var buf bytes.Buffer
	if err := StreamSpend(&buf, nil, "INR", Size{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("StreamSpend(nil) = %v, want ErrNoData", err)
	}
	days := []engine.DayTotal{{Date: time.Now(), Amount: 0}}
	if err := DailySpend(&buf, days, "INR", Size{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("DailySpend(zeros) = %v, want ErrNoData", err)
	}
	if buf.Len() != 0 {
		t.Fatal("no-data path wrote output")
	}
}
