package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/model"
	"github.com/theirongolddev/padma/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formOnboarding
	formOnboardingStream
	formStream
	formTransaction
)

type onboardingValues struct {
	income   string
	currency string
	theme    string
}

type streamValues struct {
	name   string
	amount string
	isGoal bool
	more   bool
}

type txValues struct {
	streamID string
	amount   string
	note     string
	tags     string
	method   string
	mood     string
}

var currencies = []string{"INR", "USD", "EUR", "GBP", "JPY", "AUD", "CAD"}

func validateAmount(s string) error {
	_, err := cli.ParseAmount(s)
	return err
}

func newOnboardingForm(v *onboardingValues) *huh.Form {
	currencyOpts := make([]huh.Option[string], len(currencies))
	for i, c := range currencies {
		currencyOpts[i] = huh.NewOption(cli.CurrencySymbol(c)+"  "+c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to padma").
				Description("Split your monthly income into streams and watch them flow."),
			huh.NewInput().
				Title("Monthly income").
				Placeholder("50000").
				Value(&v.income).
				Validate(validateAmount),
			huh.NewSelect[string]().
				Title("Currency").
				Options(currencyOpts...).
				Value(&v.currency),
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.theme),
		),
	).WithShowHelp(true)
}

// newStreamForm asks for one stream. check runs against the parsed amount
// so onboarding can refuse over-allocation inline.
func newStreamForm(v *streamValues, title string, check func(name string, amount int64, isGoal bool) error, askMore bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Stream name").
			Placeholder("Food").
			Value(&v.name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name is required")
				}
				return nil
			}),
		huh.NewConfirm().
			Title("Is this a savings goal?").
			Value(&v.isGoal),
		huh.NewInput().
			Title("Monthly budget").
			Placeholder("10000").
			Value(&v.amount).
			Validate(func(s string) error {
				n, err := cli.ParseAmount(s)
				if err != nil {
					return err
				}
				if check != nil {
					return check(v.name, n, v.isGoal)
				}
				return nil
			}),
	}
	if askMore {
		fields = append(fields, huh.NewConfirm().
			Title("Add another stream?").
			Affirmative("Yes").
			Negative("Finish").
			Value(&v.more))
	}
	return huh.NewForm(huh.NewGroup(fields...).Title(title)).WithShowHelp(true)
}

func newTransactionForm(v *txValues, streams []model.Stream, currency string) *huh.Form {
	streamOpts := make([]huh.Option[string], len(streams))
	for i, s := range streams {
		streamOpts[i] = huh.NewOption(s.Name, s.ID)
	}
	methodOpts := make([]huh.Option[string], len(model.PaymentMethods))
	for i, m := range model.PaymentMethods {
		methodOpts[i] = huh.NewOption(string(m), string(m))
	}
	moodOpts := []huh.Option[string]{huh.NewOption("skip", "")}
	for _, m := range model.Moods {
		moodOpts = append(moodOpts, huh.NewOption(string(m), string(m)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Stream").
				Options(streamOpts...).
				Value(&v.streamID),
			huh.NewInput().
				Title(fmt.Sprintf("Amount (%s)", strings.TrimSpace(cli.CurrencySymbol(currency)))).
				Value(&v.amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Note").
				Value(&v.note),
			huh.NewInput().
				Title("Tags").
				Description("comma separated; prefix with + to return money to savings").
				Value(&v.tags),
			huh.NewSelect[string]().
				Title("Paid with").
				Options(methodOpts...).
				Value(&v.method),
			huh.NewSelect[string]().
				Title("Mood").
				Options(moodOpts...).
				Value(&v.mood),
		).Title("New transaction"),
	).WithShowHelp(true)
}
