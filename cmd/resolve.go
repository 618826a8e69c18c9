package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/model"
)

// findStream matches ref against stream names (case-insensitive) first,
// then against ID prefixes.
func findStream(streams []model.Stream, ref string) (model.Stream, error) {
	for _, s := range streams {
		if strings.EqualFold(s.Name, ref) {
			return s, nil
		}
	}
	var hits []model.Stream
	for _, s := range streams {
		if strings.HasPrefix(s.ID, ref) {
			hits = append(hits, s)
		}
	}
	switch len(hits) {
	case 0:
		return model.Stream{}, fmt.Errorf("no stream matches %q", ref)
	case 1:
		return hits[0], nil
	}
	return model.Stream{}, fmt.Errorf("%q matches %d streams, use a longer id", ref, len(hits))
}

// findTransaction matches ref against transaction ID prefixes.
func findTransaction(txs []model.Transaction, ref string) (model.Transaction, error) {
	var hits []model.Transaction
	for _, t := range txs {
		if strings.HasPrefix(t.ID, ref) {
			hits = append(hits, t)
		}
	}
	switch len(hits) {
	case 0:
		return model.Transaction{}, fmt.Errorf("no transaction matches %q", ref)
	case 1:
		return hits[0], nil
	}
	return model.Transaction{}, fmt.Errorf("%q matches %d transactions, use a longer id", ref, len(hits))
}

// findTemplate matches ref against template names, then ID prefixes.
func findTemplate(tpls []model.Template, ref string) (model.Template, error) {
	for _, t := range tpls {
		if strings.EqualFold(t.Name, ref) {
			return t, nil
		}
	}
	var hits []model.Template
	for _, t := range tpls {
		if strings.HasPrefix(t.ID, ref) {
			hits = append(hits, t)
		}
	}
	switch len(hits) {
	case 0:
		return model.Template{}, fmt.Errorf("no template matches %q", ref)
	case 1:
		return hits[0], nil
	}
	return model.Template{}, fmt.Errorf("%q matches %d templates, use a longer id", ref, len(hits))
}

func streamName(streams []model.Stream, id string) string {
	if s, ok := model.FindStream(streams, id); ok {
		return s.Name
	}
	return cli.ShortID(id)
}
