package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/repository"
)

// resolveRep finds a rep by exact ID or email, then by ID prefix, then by
// case-insensitive name match.
func resolveRep(ctx context.Context, app *App, input string) (*domain.Rep, error) {
	if input == "" {
		return nil, fmt.Errorf("rep ID, email, or name is required")
	}

	rep, err := app.Roster.GetRep(ctx, input)
	if err == nil {
		return rep, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	reps, err := app.Roster.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*domain.Rep
	for _, r := range reps {
		if strings.HasPrefix(r.ID, input) || strings.EqualFold(r.Name, input) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("rep not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("rep %q is ambiguous (%d matches)", input, len(matches))
	}
}
