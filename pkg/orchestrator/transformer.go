package orchestrator

import (
	"context"
	"slices"
	"strings"

	"github.com/goliatone/go-patientview/pkg/person"
)

// Transformer rewrites a roster after loading and before rendering. It may
// reorder, filter or replace entries but must not mutate the input slice.
type Transformer interface {
	Transform(ctx context.Context, roster []person.Person) ([]person.Person, error)
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, roster []person.Person) ([]person.Person, error)

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, roster []person.Person) ([]person.Person, error) {
	if fn == nil {
		return roster, nil
	}
	return fn(ctx, roster)
}

// OldestFirst orders people from earliest to latest birthday. People without
// a birthday keep their relative order after everyone else.
func OldestFirst() Transformer {
	return TransformerFunc(func(_ context.Context, roster []person.Person) ([]person.Person, error) {
		out := slices.Clone(roster)
		slices.SortStableFunc(out, func(a, b person.Person) int {
			switch {
			case !a.HasBirthday() && !b.HasBirthday():
				return 0
			case !a.HasBirthday():
				return 1
			case !b.HasBirthday():
				return -1
			}
			order, err := a.CompareBirthday(b)
			if err != nil {
				return 0
			}
			return -order
		})
		return out, nil
	})
}

// NameContains keeps people whose name contains query, ignoring case. An
// empty query keeps everyone.
func NameContains(query string) Transformer {
	needle := strings.ToLower(strings.TrimSpace(query))
	return TransformerFunc(func(_ context.Context, roster []person.Person) ([]person.Person, error) {
		if needle == "" {
			return roster, nil
		}
		out := make([]person.Person, 0, len(roster))
		for _, p := range roster {
			if strings.Contains(strings.ToLower(p.Name()), needle) {
				out = append(out, p)
			}
		}
		return out, nil
	})
}

// Chain runs transformers in order, feeding each the previous result.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, roster []person.Person) ([]person.Person, error) {
		current := roster
		for _, t := range transformers {
			if t == nil {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			next, err := t.Transform(ctx, current)
			if err != nil {
				return nil, err
			}
			current = next
		}
		return current, nil
	})
}
