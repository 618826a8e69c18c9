// Package state owns the canonical padma AppState. All mutations go through
// Reduce, which maps an Action onto a fresh state value.
package state

import "github.com/theirongolddev/padma/internal/model"

// Action is a state transition request. The reducer handles the action
// types declared in this file; any other implementation leaves the state
// unchanged.
type Action interface {
	Type() string
}

type (
	// LoadState replaces the whole state, used at startup.
	LoadState struct{ State model.AppState }

	// SetIncome sets the user's monthly income.
	SetIncome struct{ Income int64 }

	// SetCurrency sets the user's display currency.
	SetCurrency struct{ Currency string }

	// AddStream appends a stream.
	AddStream struct{ Stream model.Stream }

	// UpdateStream merges Patch into the stream with ID.
	UpdateStream struct {
		ID    string
		Patch model.StreamPatch
	}

	// DeleteStream removes a stream and every transaction referencing it.
	DeleteStream struct{ ID string }

	// AddTransaction appends a transaction.
	AddTransaction struct{ Transaction model.Transaction }

	// UpdateTransaction merges Patch into the transaction with ID.
	UpdateTransaction struct {
		ID    string
		Patch model.TransactionPatch
	}

	// DeleteTransaction removes a transaction.
	DeleteTransaction struct{ ID string }

	// AddTemplate appends a template.
	AddTemplate struct{ Template model.Template }

	// UpdateTemplate merges Patch into the template with ID.
	UpdateTemplate struct {
		ID    string
		Patch model.TemplatePatch
	}

	// DeleteTemplate removes a template.
	DeleteTemplate struct{ ID string }

	// SetAnalytics replaces the cached analytics.
	SetAnalytics struct{ Analytics model.Analytics }

	// CompleteOnboarding marks setup as done.
	CompleteOnboarding struct{}

	// ArchiveMonth snapshots the current figures under Month ("YYYY-MM").
	ArchiveMonth struct{ Month string }

	// ResetApp returns to a fresh default state.
	ResetApp struct{}
)

func (LoadState) Type() string          { return "LOAD_STATE" }
func (SetIncome) Type() string          { return "SET_INCOME" }
func (SetCurrency) Type() string        { return "SET_CURRENCY" }
func (AddStream) Type() string          { return "ADD_STREAM" }
func (UpdateStream) Type() string       { return "UPDATE_STREAM" }
func (DeleteStream) Type() string       { return "DELETE_STREAM" }
func (AddTransaction) Type() string     { return "ADD_TRANSACTION" }
func (UpdateTransaction) Type() string  { return "UPDATE_TRANSACTION" }
func (DeleteTransaction) Type() string  { return "DELETE_TRANSACTION" }
func (AddTemplate) Type() string        { return "ADD_TEMPLATE" }
func (UpdateTemplate) Type() string     { return "UPDATE_TEMPLATE" }
func (DeleteTemplate) Type() string     { return "DELETE_TEMPLATE" }
func (SetAnalytics) Type() string       { return "SET_ANALYTICS" }
func (CompleteOnboarding) Type() string { return "COMPLETE_ONBOARDING" }
func (ArchiveMonth) Type() string       { return "ARCHIVE_MONTH" }
func (ResetApp) Type() string           { return "RESET_APP" }
