package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness conflict
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this week"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ReferenceViolationError represents a write that points at a nonexistent
// row, or a delete blocked by rows that still reference the target
type ReferenceViolationError struct {
	Entity  string
	Message string
}

func (e *ReferenceViolationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid reference to %s: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("invalid reference to %s", e.Entity)
}

// Is enables errors.Is() comparison for ReferenceViolationError
func (e *ReferenceViolationError) Is(target error) bool {
	t, ok := target.(*ReferenceViolationError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCategoryNotFound       = &NotFoundError{Entity: "category"}
	ErrTagNotFound            = &NotFoundError{Entity: "tag"}
	ErrComponentNotFound      = &NotFoundError{Entity: "component"}
	ErrTagAssociationNotFound = &NotFoundError{Entity: "tag association"}
	ErrDetailNotFound         = &NotFoundError{Entity: "component detail"}
	ErrTeamMemberNotFound     = &NotFoundError{Entity: "team member"}
	ErrReportNotFound         = &NotFoundError{Entity: "report"}
	ErrEvaluationNotFound     = &NotFoundError{Entity: "peer evaluation"}
	ErrAnalysisNotFound       = &NotFoundError{Entity: "hr analysis"}
)

// Already Exists Errors
var (
	ErrCategoryExists   = &AlreadyExistsError{Entity: "category", Context: "with this name"}
	ErrTagExists        = &AlreadyExistsError{Entity: "tag", Context: "with this name"}
	ErrComponentExists  = &AlreadyExistsError{Entity: "component", Context: "with this name"}
	ErrTeamMemberExists = &AlreadyExistsError{Entity: "team member", Context: "with this email"}
	ErrReportExists     = &AlreadyExistsError{Entity: "report", Context: "for this member, week and year"}
	ErrEvaluationExists = &AlreadyExistsError{Entity: "peer evaluation", Context: "for this report and pair"}
)

// Reference Violation Errors
var (
	ErrCategoryInUse       = &ReferenceViolationError{Entity: "category", Message: "category is still referenced by components"}
	ErrComponentReference  = &ReferenceViolationError{Entity: "component", Message: "referenced component does not exist"}
	ErrTeamMemberReference = &ReferenceViolationError{Entity: "team member", Message: "referenced team member does not exist"}
	ErrReportReference     = &ReferenceViolationError{Entity: "report", Message: "referenced report does not exist"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidComplexity       = errors.New("invalid complexity")
	ErrInvalidSentiment        = errors.New("invalid sentiment")
	ErrRatingOutOfRange        = errors.New("rating must be between 1 and 5")
	ErrSelfEvaluation          = errors.New("evaluator and evaluatee must be different members")
	ErrInvalidWeekNumber       = errors.New("week number must be between 1 and 53")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrRepositoryURLMissing    = errors.New("component has no git repository url")
	ErrRepositoryURLInvalid    = errors.New("component git repository url is not a recognized github url")
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid or expired token"}
	ErrUnknownUser       = &AuthenticationError{Message: "unknown user"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsReferenceViolation checks if an error is a ReferenceViolationError
func IsReferenceViolation(err error) bool {
	var refErr *ReferenceViolationError
	return errors.As(err, &refErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewReferenceViolationError creates a new ReferenceViolationError
func NewReferenceViolationError(entity, message string) error {
	return &ReferenceViolationError{Entity: entity, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
