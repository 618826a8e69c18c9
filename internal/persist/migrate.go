package persist

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

// migrate carries user, streams and transactions over from a blob written
// by another schema version. Every other section starts from defaults, and
// a section with the wrong shape is skipped.
func migrate(raw []byte, now time.Time) model.AppState {
	st := model.DefaultState(now)

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return st
	}

	if v, ok := sections["user"]; ok && isObject(v) {
		var u model.User
		if err := json.Unmarshal(v, &u); err == nil {
			st.User = u
		}
	}
	if v, ok := sections["streams"]; ok && isArray(v) {
		var streams []model.Stream
		if err := json.Unmarshal(v, &streams); err == nil {
			st.Streams = streams
		}
	}
	if v, ok := sections["transactions"]; ok && isArray(v) {
		var txs []model.Transaction
		if err := json.Unmarshal(v, &txs); err == nil {
			st.Transactions = txs
		}
	}

	return normalize(st, now)
}

// normalize fills in collections and fields a decoded blob may lack.
func normalize(st model.AppState, now time.Time) model.AppState {
	def := model.DefaultState(now)
	if st.User.Currency == "" {
		st.User.Currency = def.User.Currency
	}
	if st.Streams == nil {
		st.Streams = def.Streams
	}
	if st.Transactions == nil {
		st.Transactions = def.Transactions
	}
	if st.Templates == nil {
		st.Templates = def.Templates
	}
	if st.Archives == nil {
		st.Archives = def.Archives
	}
	if st.Analytics.MonthlyTrends == nil {
		st.Analytics.MonthlyTrends = def.Analytics.MonthlyTrends
	}
	if st.Analytics.Insights == nil {
		st.Analytics.Insights = def.Analytics.Insights
	}
	if st.Meta.CurrentMonth == "" {
		st.Meta.CurrentMonth = def.Meta.CurrentMonth
	}
	st.Meta.Version = model.SchemaVersion
	return st
}

func isObject(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '{'
}

func isArray(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '['
}
