// Package domainerrors holds the failures the suggestion subsystem reports to
// its callers. Store-level failures are wrapped with ErrStoreUnavailable so the
// transport layer can hide their detail.
package domainerrors

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrDuplicatePending = errors.New("suggestion already pending")
	ErrDuplicateVote    = errors.New("already voted")
	ErrNotFound         = errors.New("suggestion not found")
	ErrAlreadyProcessed = errors.New("already processed")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Code returns the stable machine-readable code for err.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrDuplicatePending):
		return "duplicate_pending"
	case errors.Is(err, ErrDuplicateVote):
		return "duplicate_vote"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyProcessed):
		return "already_processed"
	default:
		return "store_unavailable"
	}
}
