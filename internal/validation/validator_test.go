package validation

import (
	"strings"
	"testing"

	"github.com/dainakamiko/quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStartQuizRequest(t *testing.T) {
	v := NewValidator()

	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, v.ValidateStartQuizRequest("geography", 5))
	})

	t.Run("ZeroCountMeansDefault", func(t *testing.T) {
		assert.Empty(t, v.ValidateStartQuizRequest("geography", 0))
	})

	t.Run("FreeTextCategory", func(t *testing.T) {
		assert.Empty(t, v.ValidateStartQuizRequest("日本の歴史", 5))
	})

	t.Run("MissingCategory", func(t *testing.T) {
		errs := v.ValidateStartQuizRequest("  ", 5)
		require.Len(t, errs, 1)
		assert.Equal(t, "category", errs[0].Field)
		assert.Equal(t, domain.CodeMissingField, errs[0].Code)
	})

	t.Run("CategoryTooLong", func(t *testing.T) {
		errs := v.ValidateStartQuizRequest(strings.Repeat("a", 200), 5)
		require.Len(t, errs, 1)
		assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
	})

	t.Run("CountOutOfRange", func(t *testing.T) {
		for _, count := range []int{-1, 51} {
			errs := v.ValidateStartQuizRequest("geography", count)
			require.Len(t, errs, 1)
			assert.Equal(t, "question_count", errs[0].Field)
		}
	})

	t.Run("MultipleErrors", func(t *testing.T) {
		errs := v.ValidateStartQuizRequest("", -3)
		assert.Len(t, errs, 2)
	})
}

func TestValidateSubmitAnswerRequest(t *testing.T) {
	v := NewValidator()

	t.Run("Valid", func(t *testing.T) {
		for selected := 0; selected < domain.OptionCount; selected++ {
			s := selected
			assert.Empty(t, v.ValidateSubmitAnswerRequest(&s))
		}
	})

	t.Run("Missing", func(t *testing.T) {
		errs := v.ValidateSubmitAnswerRequest(nil)
		require.Len(t, errs, 1)
		assert.Equal(t, domain.CodeMissingField, errs[0].Code)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		for _, selected := range []int{-1, 4} {
			s := selected
			errs := v.ValidateSubmitAnswerRequest(&s)
			require.Len(t, errs, 1)
			assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
		}
	})
}

func TestValidateSessionID(t *testing.T) {
	v := NewValidator()

	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, v.ValidateSessionID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	})

	t.Run("Missing", func(t *testing.T) {
		errs := v.ValidateSessionID("")
		require.Len(t, errs, 1)
		assert.Equal(t, domain.CodeMissingField, errs[0].Code)
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		for _, id := range []string{"short", "01arz3ndektsv4rrffq69g5fav", strings.Repeat("I", 26)} {
			errs := v.ValidateSessionID(id)
			require.Len(t, errs, 1, id)
			assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
		}
	})
}
