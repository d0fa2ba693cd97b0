package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// invalidInput tags a domain validation error as a client error.
func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// wrapStoreErr names the failed operation and tags store outages as an
// unavailable dependency.
func wrapStoreErr(op string, err error) error {
	if matchstats.IsStoreUnavailable(err) {
		return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func requireName(field, raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", invalidInput(&matchstats.ValidationError{Field: field, Reason: "is required"})
	}
	return name, nil
}

func requireKind(kind matchstats.Kind) error {
	if !kind.Valid() {
		return invalidInput(&matchstats.ValidationError{Field: "kind", Reason: "must be one of player, team, champion"})
	}
	return nil
}
