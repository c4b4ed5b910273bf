package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewLLMServiceError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDomainError_CodesViaErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("starting quiz: %w", NewLLMSchemaError("too few valid questions"))

	var domainErr *DomainError
	require.ErrorAs(t, wrapped, &domainErr)
	assert.Equal(t, CodeLLMSchemaError, domainErr.Code)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		NewMissingFieldError("category"),
		NewOutOfRangeError("question_count", 99, 1, 50),
	}

	msg := errs.Error()
	assert.Contains(t, msg, "category is required")
	assert.Contains(t, msg, "question_count must be between 1 and 50")
}
