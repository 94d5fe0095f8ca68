package validation

import (
	"strings"

	"leembo/internal/domain"
	"leembo/internal/util"
)

const (
	MaxTopicLength = 200
	MaxLimit       = 20
	MaxAge         = 120
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTopic validates a learning topic
func (v *Validator) ValidateTopic(topic string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	} else if len(trimmed) > MaxTopicLength {
		errors = append(errors, domain.NewOutOfRangeError("topic", len(trimmed), 1, MaxTopicLength))
	}

	return errors
}

// ValidateApproval validates an assessment approval request. Level and style
// must be known values since the learner picked them explicitly.
func (v *Validator) ValidateApproval(topic string, level, style string) domain.ValidationErrors {
	errors := v.ValidateTopic(topic)

	if strings.TrimSpace(level) == "" {
		errors = append(errors, domain.NewMissingFieldError("assessment.level"))
	} else if !isKnownLevel(level) {
		errors = append(errors, domain.NewInvalidFormatError("assessment.level", level))
	}

	if strings.TrimSpace(style) == "" {
		errors = append(errors, domain.NewMissingFieldError("assessment.style"))
	} else if !isKnownStyle(style) {
		errors = append(errors, domain.NewInvalidFormatError("assessment.style", style))
	}

	return errors
}

// ValidateLimit validates a result count
func (v *Validator) ValidateLimit(limit int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if limit <= 0 || limit > MaxLimit {
		errors = append(errors, domain.NewOutOfRangeError("limit", limit, 1, MaxLimit))
	}
	return errors
}

// ValidateAge validates an optional learner age; zero means not given.
func (v *Validator) ValidateAge(age int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if age < 0 || age > MaxAge {
		errors = append(errors, domain.NewOutOfRangeError("age", age, 1, MaxAge))
	}
	return errors
}

// ValidateSessionID validates a session identifier
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !util.IsULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", id))
	}
	return errors
}

func isKnownLevel(s string) bool {
	for _, l := range []domain.Level{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced} {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return true
		}
	}
	return false
}

func isKnownStyle(s string) bool {
	for _, st := range []domain.Style{domain.StyleVisual, domain.StyleAuditory, domain.StyleReading, domain.StyleKinesthetic} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return true
		}
	}
	return false
}
