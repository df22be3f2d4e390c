package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{fmt.Errorf("%w: name is required", ErrValidation), "validation_error"},
		{ErrDuplicatePending, "duplicate_pending"},
		{ErrDuplicateVote, "duplicate_vote"},
		{ErrNotFound, "not_found"},
		{ErrAlreadyProcessed, "already_processed"},
		{fmt.Errorf("%w: %w", ErrStoreUnavailable, errors.New("dial tcp: connection refused")), "store_unavailable"},
		{errors.New("unexpected"), "store_unavailable"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, Code(tt.err), tt.err.Error())
	}
}
