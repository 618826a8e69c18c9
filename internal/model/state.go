package model

import (
	"maps"
	"slices"
	"time"
)

// SchemaVersion tags persisted state. A blob carrying any other version
// goes through migration on load.
const SchemaVersion = "1.0.0"

// DefaultCurrency is used until the user picks one.
const DefaultCurrency = "INR"

// MonthKeyLayout formats a time as a "YYYY-MM" month key.
const MonthKeyLayout = "2006-01"

// User holds the per-device user profile.
type User struct {
	MonthlyIncome int64  `json:"monthlyIncome"`
	Currency      string `json:"currency"`
	SetupComplete bool   `json:"setupComplete"`
}

// MonthlyArchive is an immutable snapshot of one month.
type MonthlyArchive struct {
	Month            string    `json:"month"`
	TotalIncome      int64     `json:"totalIncome"`
	TotalSpent       int64     `json:"totalSpent"`
	Streams          []Stream  `json:"streams"`
	TransactionCount int       `json:"transactionCount"`
	Insights         []string  `json:"insights"`
	ArchivedAt       time.Time `json:"archivedAt"`
}

// Analytics caches derived trend and insight data.
type Analytics struct {
	MonthlyTrends  map[string]int64 `json:"monthlyTrends"`
	Insights       []string         `json:"insights"`
	LastCalculated *time.Time       `json:"lastCalculated,omitempty"`
}

// Meta carries bookkeeping for persistence.
type Meta struct {
	CurrentMonth  string     `json:"currentMonth"`
	LastSavedDate *time.Time `json:"lastSavedDate,omitempty"`
	Version       string     `json:"version"`
}

// AppState is the aggregate root and the unit of persistence.
type AppState struct {
	User         User                      `json:"user"`
	Streams      []Stream                  `json:"streams"`
	Transactions []Transaction             `json:"transactions"`
	Templates    []Template                `json:"templates"`
	Archives     map[string]MonthlyArchive `json:"archives"`
	Analytics    Analytics                 `json:"analytics"`
	Meta         Meta                      `json:"meta"`
}

// MonthKey returns the "YYYY-MM" key for t in its own location.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// DefaultState returns the fresh state of a device that has never been set up.
func DefaultState(now time.Time) AppState {
	return AppState{
		User: User{
			Currency: DefaultCurrency,
		},
		Streams:      []Stream{},
		Transactions: []Transaction{},
		Templates:    []Template{},
		Archives:     map[string]MonthlyArchive{},
		Analytics: Analytics{
			MonthlyTrends: map[string]int64{},
			Insights:      []string{},
		},
		Meta: Meta{
			CurrentMonth: MonthKey(now),
			Version:      SchemaVersion,
		},
	}
}

// Clone returns a deep copy. No slice, map or pointer in the result is
// shared with s.
func (s AppState) Clone() AppState {
	out := s
	out.Streams = cloneStreams(s.Streams)
	out.Transactions = cloneTransactions(s.Transactions)
	out.Templates = cloneTemplates(s.Templates)

	if s.Archives != nil {
		out.Archives = make(map[string]MonthlyArchive, len(s.Archives))
		for k, a := range s.Archives {
			out.Archives[k] = a.Clone()
		}
	}

	out.Analytics = s.Analytics.Clone()
	out.Meta.LastSavedDate = cloneTime(s.Meta.LastSavedDate)
	return out
}

// Clone returns a deep copy of the analytics cache.
func (a Analytics) Clone() Analytics {
	return Analytics{
		MonthlyTrends:  maps.Clone(a.MonthlyTrends),
		Insights:       cloneStrings(a.Insights),
		LastCalculated: cloneTime(a.LastCalculated),
	}
}

// Clone returns a deep copy of the archive.
func (a MonthlyArchive) Clone() MonthlyArchive {
	out := a
	out.Streams = cloneStreams(a.Streams)
	out.Insights = cloneStrings(a.Insights)
	return out
}

func cloneStreams(s []Stream) []Stream {
	return slices.Clone(s)
}

func cloneTransactions(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}
	out := make([]Transaction, len(txs))
	for i, t := range txs {
		t.Tags = cloneStrings(t.Tags)
		out[i] = t
	}
	return out
}

func cloneTemplates(tpls []Template) []Template {
	if tpls == nil {
		return nil
	}
	out := make([]Template, len(tpls))
	for i, t := range tpls {
		t.Tags = cloneStrings(t.Tags)
		t.LastUsed = cloneTime(t.LastUsed)
		out[i] = t
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
