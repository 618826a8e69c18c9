package model

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how a transaction was paid.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentUPI   PaymentMethod = "upi"
	PaymentBank  PaymentMethod = "bank"
	PaymentOther PaymentMethod = "other"
)

// PaymentMethods lists the known payment methods in display order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentUPI, PaymentBank, PaymentOther}

// Mood is the optional feeling attached to a transaction.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodStressed  Mood = "stressed"
	MoodImpulsive Mood = "impulsive"
	MoodNecessary Mood = "necessary"
)

// Moods lists the known moods in display order.
var Moods = []Mood{MoodHappy, MoodNeutral, MoodStressed, MoodImpulsive, MoodNecessary}

// ReturnTagPrefix marks a tag meaning "money returned to savings".
const ReturnTagPrefix = "+"

// Transaction is a single spend or withdrawal against a stream.
type Transaction struct {
	ID            string        `json:"id"`
	StreamID      string        `json:"streamId"`
	Amount        int64         `json:"amount"`
	Note          string        `json:"note"`
	Tags          []string      `json:"tags"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Mood          Mood          `json:"mood,omitempty"`
	IsRecurring   bool          `json:"isRecurring"`
	TemplateID    string        `json:"templateId,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// NewTransaction returns a transaction stamped at now with a fresh ID.
// Tags are copied so the caller's slice is never aliased.
func NewTransaction(streamID string, amount int64, note string, tags []string, method PaymentMethod, now time.Time) Transaction {
	if method == "" {
		method = PaymentCash
	}
	return Transaction{
		ID:            uuid.NewString(),
		StreamID:      streamID,
		Amount:        amount,
		Note:          note,
		Tags:          cloneStrings(tags),
		PaymentMethod: method,
		Timestamp:     now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HasReturnTag reports whether any tag starts with ReturnTagPrefix.
func (t Transaction) HasReturnTag() bool {
	return slices.ContainsFunc(t.Tags, func(tag string) bool {
		return strings.HasPrefix(tag, ReturnTagPrefix)
	})
}

// TransactionPatch holds the fields an update may change.
type TransactionPatch struct {
	StreamID      *string
	Amount        *int64
	Note          *string
	Tags          *[]string
	PaymentMethod *PaymentMethod
	Mood          *Mood
	IsRecurring   *bool
	Timestamp     *time.Time
}

// Apply merges the patch into t.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.StreamID != nil {
		t.StreamID = *p.StreamID
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	if p.Tags != nil {
		t.Tags = cloneStrings(*p.Tags)
	}
	if p.PaymentMethod != nil {
		t.PaymentMethod = *p.PaymentMethod
	}
	if p.Mood != nil {
		t.Mood = *p.Mood
	}
	if p.IsRecurring != nil {
		t.IsRecurring = *p.IsRecurring
	}
	if p.Timestamp != nil {
		t.Timestamp = *p.Timestamp
	}
	return t
}

// FilterByStream returns the transactions whose StreamID equals id.
func FilterByStream(txs []Transaction, id string) []Transaction {
	var result []Transaction
	for _, t := range txs {
		if t.StreamID == id {
			result = append(result, t)
		}
	}
	return result
}

func cloneStrings(s []string) []string {
	return slices.Clone(s)
}
