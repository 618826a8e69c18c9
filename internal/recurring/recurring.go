package recurring

import (
	"time"

	"github.com/theirongolddev/padma/internal/model"
)

// IsDue reports whether tpl is active and due at now. Templates with an
// unknown frequency are never due.
func IsDue(tpl model.Template, now time.Time) bool {
	if !tpl.IsActive {
		return false
	}
	c, err := CheckerFor(tpl.Frequency)
	if err != nil {
		return false
	}
	var last time.Time
	if tpl.LastUsed != nil {
		last = *tpl.LastUsed
	}
	return c.IsDue(last, now, tpl.CreatedAt)
}

// DueTemplates returns the active templates due at now, in input order.
func DueTemplates(templates []model.Template, now time.Time) []model.Template {
	var due []model.Template
	for _, t := range templates {
		if IsDue(t, now) {
			due = append(due, t)
		}
	}
	return due
}

// Apply builds the transaction a template produces at now and the patch
// that records the use on the template. The caller dispatches both.
func Apply(tpl model.Template, now time.Time) (model.Transaction, model.TemplatePatch) {
	tx := model.NewTransaction(tpl.StreamID, tpl.Amount, tpl.Note, tpl.Tags, model.PaymentCash, now)
	tx.IsRecurring = true
	tx.TemplateID = tpl.ID

	count := tpl.UsageCount + 1
	used := now
	return tx, model.TemplatePatch{UsageCount: &count, LastUsed: &used}
}
