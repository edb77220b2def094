package service

import (
	"errors"
	"fmt"

	"github.com/northpath/realign/internal/realign/store"
)

var (
	ErrRealignmentNotFound = errors.New("realignment not found")
	ErrVersionNotFound     = errors.New("version not found")
	ErrScenarioNotFound    = errors.New("scenario not found")
	ErrShareLinkNotFound   = errors.New("share link not found or expired")

	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")

	ErrTierLimit                  = errors.New("tier assessment limit reached")
	ErrScenarioBuilderUnavailable = errors.New("scenario builder not included in tier")
	ErrScenarioLimit              = errors.New("tier scenario limit reached")

	errScenarioTitle = errors.New("scenario title is required")
	errUnknownStatus = errors.New("status must be all, complete or incomplete")
	errUnknownSort   = errors.New("sort must be created_at, redundancy or savings")
)

// invalid wraps a validation failure so callers can match ErrInvalidInput
// and still read the underlying reason.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// notFound maps store.ErrNotFound to the given service error.
func notFound(err, target error) error {
	if errors.Is(err, store.ErrNotFound) {
		return target
	}
	return err
}
