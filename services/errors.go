package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resort-backend/repository"
	"resort-backend/utils"
)

var (
	// ErrValidation: bad operator input. The session is left as it was.
	ErrValidation = errors.New("validation_error")
	// ErrInvalidSelection: a chosen room is no longer free.
	ErrInvalidSelection = errors.New("invalid_selection")
	ErrNotFound         = errors.New("not_found")
	// ErrInvalidState: the record is not in a state that allows the action,
	// e.g. a second checkout. Clients should refresh.
	ErrInvalidState = errors.New("invalid_state")
)

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// fromRepo turns repository sentinels into service errors.
func fromRepo(err error, what string, id uint) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %s %d", ErrNotFound, what, id)
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %s %d changed concurrently", ErrInvalidState, what, id)
	}
	return err
}

const (
	readAttempts = 3
	readBackoff  = 100 * time.Millisecond
)

// readWithRetry retries list/get calls against the store. Writes never go through here.
func readWithRetry(ctx context.Context, fn func() error) error {
	return utils.Retry(ctx, readAttempts, readBackoff, isPermanent, fn)
}

func isPermanent(err error) bool {
	return errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
