package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/greenspot/internal/domain"
)

// resolveID matches input against items by exact ID, then exact
// (case-insensitive) name, then ID prefix. name may be nil for kinds
// without a display name.
func resolveID[T any](kind, input string, items []T, id func(T) string, name func(T) string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, it := range items {
		if id(it) == input {
			return input, nil
		}
	}

	if name != nil {
		var named []string
		for _, it := range items {
			if strings.EqualFold(name(it), input) {
				named = append(named, id(it))
			}
		}
		switch len(named) {
		case 0:
		case 1:
			return named[0], nil
		default:
			return "", fmt.Errorf("%s name %q is ambiguous (%d matches), use an ID", kind, input, len(named))
		}
	}

	var matches []string
	for _, it := range items {
		if strings.HasPrefix(id(it), input) {
			matches = append(matches, id(it))
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q: %w", kind, input, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveSpotID(ctx context.Context, app *App, input string) (string, error) {
	spots, err := app.Spots.List(ctx)
	if err != nil {
		return "", err
	}
	return resolveID("spot", input, spots,
		func(s *domain.Spot) string { return s.ID },
		func(s *domain.Spot) string { return s.Name })
}

func resolvePlantID(ctx context.Context, app *App, input string) (string, error) {
	plants, err := app.Plants.List(ctx)
	if err != nil {
		return "", err
	}
	return resolveID("plant", input, plants,
		func(p *domain.Plant) string { return p.ID },
		func(p *domain.Plant) string { return p.Name })
}

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx, "", true)
	if err != nil {
		return "", err
	}
	return resolveID("task", input, tasks,
		func(t *domain.Task) string { return t.ID }, nil)
}
