package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "component"}
		assert.Equal(t, "component not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "component"}
		err2 := &NotFoundError{Entity: "component"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "component"}
		err2 := &NotFoundError{Entity: "tag"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrComponentNotFound, ErrComponentNotFound))
		assert.False(t, errors.Is(ErrComponentNotFound, ErrCategoryNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrComponentNotFound))
		assert.True(t, IsNotFound(ErrReportNotFound))
		assert.False(t, IsNotFound(ErrComponentExists))
	})

	t.Run("IsNotFound sees wrapped errors", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup failed: %w", ErrTagNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "report", Context: "for this member, week and year"}
		assert.Equal(t, "report already exists for this member, week and year", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tag"}
		assert.Equal(t, "tag already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "category", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "category", Context: "with this name"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrReportExists))
		assert.True(t, IsAlreadyExists(ErrEvaluationExists))
		assert.False(t, IsAlreadyExists(ErrReportNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
		assert.Equal(t, "validation error: rating - must be between 1 and 5", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad payload"}
		assert.Equal(t, "validation error: bad payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "required")))
		assert.False(t, IsValidation(ErrComponentNotFound))
	})
}

func TestReferenceViolationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ReferenceViolationError{Entity: "category", Message: "category is still referenced by components"}
		assert.Equal(t, "invalid reference to category: category is still referenced by components", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrCategoryInUse, ErrCategoryInUse))
		assert.False(t, errors.Is(ErrCategoryInUse, ErrComponentReference))
	})

	t.Run("IsReferenceViolation helper", func(t *testing.T) {
		assert.True(t, IsReferenceViolation(ErrComponentReference))
		assert.True(t, IsReferenceViolation(ErrTeamMemberReference))
		assert.False(t, IsReferenceViolation(ErrComponentNotFound))
	})
}

func TestAuthenticationErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrMissingAuthHeader))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrComponentNotFound))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(NewAuthorizationError("writes require authentication")))
		assert.False(t, IsAuthorization(ErrInvalidToken))
	})
}

func TestBusinessErrors(t *testing.T) {
	t.Run("sentinels compare with errors.Is", func(t *testing.T) {
		wrapped := fmt.Errorf("create evaluation: %w", ErrSelfEvaluation)
		assert.True(t, errors.Is(wrapped, ErrSelfEvaluation))
		assert.False(t, errors.Is(wrapped, ErrRatingOutOfRange))
	})
}
