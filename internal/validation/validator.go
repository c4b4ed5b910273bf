package validation

import (
	"regexp"
	"strings"

	"github.com/dainakamiko/quiz/internal/domain"
)

const maxCategoryLength = 100
const maxQuestionCount = 50

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStartQuizRequest validates the start quiz request. The category is
// free text but must be present; the silent fallback category of the old
// behavior is intentionally gone. A zero count means "use the configured
// default" and is accepted.
func (v *Validator) ValidateStartQuizRequest(category string, count int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	} else if len(category) > maxCategoryLength {
		errors = append(errors, domain.NewOutOfRangeError("category", len(category), 1, maxCategoryLength))
	}

	if count != 0 && (count < 1 || count > maxQuestionCount) {
		errors = append(errors, domain.NewOutOfRangeError("question_count", count, 1, maxQuestionCount))
	}

	return errors
}

// ValidateSubmitAnswerRequest validates an answer submission
func (v *Validator) ValidateSubmitAnswerRequest(selectedOption *int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if selectedOption == nil {
		errors = append(errors, domain.NewMissingFieldError("selected_option"))
		return errors
	}

	if *selectedOption < 0 || *selectedOption >= domain.OptionCount {
		errors = append(errors, domain.NewOutOfRangeError("selected_option", *selectedOption, 0, domain.OptionCount-1))
	}

	return errors
}

// ValidateSessionID validates the session token path parameter
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
		return errors
	}

	if !isValidULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, Crockford's Base32
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
