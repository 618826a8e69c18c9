package engine

import (
	"math"
	"sort"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

const (
	maxScore = 100.0

	// Each day between transactions costs this many consistency points.
	gapPenaltyPerDay = 2.0
	// Each full budget used costs this many alignment points.
	usagePenalty = 20.0
	// Running score multiplier once a spending stream is over budget.
	overBudgetFactor = 0.5
)

// StreamHealth scores a stream from 0 to 100. The running score starts at
// 100 and is averaged in turn with consistency and mindfulness; spending
// streams then average in budget alignment, or halve the score when over
// budget. The order matters: this is not a plain mean of three factors.
func StreamHealth(stream model.Stream, txs []model.Transaction) int {
	own := model.FilterByStream(txs, stream.ID)

	score := maxScore
	score = (score + consistencyScore(own)) / 2
	score = (score + mindfulnessScore(own)) / 2

	if !stream.IsGoal {
		ratio := usageRatio(stream, own)
		if ratio <= 1 {
			score = (score + clampScore(maxScore-usagePenalty*ratio)) / 2
		} else {
			score *= overBudgetFactor
		}
	}

	return int(math.Round(clampScore(score)))
}

// consistencyScore rewards regular logging: 100 minus two points per day of
// average gap between consecutive transactions.
func consistencyScore(txs []model.Transaction) float64 {
	if len(txs) < 2 {
		return maxScore
	}

	stamps := make([]time.Time, len(txs))
	for i, t := range txs {
		stamps[i] = t.Timestamp
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })

	var totalDays float64
	for i := 1; i < len(stamps); i++ {
		totalDays += stamps[i].Sub(stamps[i-1]).Hours() / 24
	}
	avg := totalDays / float64(len(stamps)-1)

	return clampScore(maxScore - gapPenaltyPerDay*avg)
}

// mindfulnessScore is the share of transactions that carry a note. A stream
// with no transactions has nothing unexplained and scores 100.
func mindfulnessScore(txs []model.Transaction) float64 {
	if len(txs) == 0 {
		return maxScore
	}
	noted := 0
	for _, t := range txs {
		if t.Note != "" {
			noted++
		}
	}
	return clampScore(float64(noted) / float64(len(txs)) * 100)
}

func usageRatio(stream model.Stream, own []model.Transaction) float64 {
	if stream.OriginalAmount <= 0 {
		return 0
	}
	return float64(TotalSpent(own)) / float64(stream.OriginalAmount)
}

func clampScore(v float64) float64 {
	return max(0, min(maxScore, v))
}
