package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/itinerary-api/internal/api/shared"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// Error kinds reported in the "kind" field of error bodies.
const (
	KindNotFound          = "not_found"
	KindMissingField      = "missing_field"
	KindInvalidValue      = "invalid_value"
	KindInvalidDateFormat = "invalid_date_format"
	KindInvalidParameter  = "invalid_parameter"
	KindDuplicateKey      = "duplicate_key"
	KindInternal          = "internal"
)

// ErrorKind classifies err into one of the error kinds.
// The more specific validation kinds are checked before the generic one.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return KindInternal
	case store.IsNotFoundError(err):
		return KindNotFound
	case store.IsDuplicateError(err):
		return KindDuplicateKey
	case errors.Is(err, domain.ErrMissingField):
		return KindMissingField
	case errors.Is(err, domain.ErrInvalidDateFormat):
		return KindInvalidDateFormat
	case errors.Is(err, domain.ErrInvalidParameter):
		return KindInvalidParameter
	case errors.Is(err, domain.ErrInvalidValue),
		errors.Is(err, domain.ErrValidation):
		return KindInvalidValue
	default:
		return KindInternal
	}
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch ErrorKind(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicateKey:
		return http.StatusConflict
	case KindMissingField, KindInvalidValue, KindInvalidDateFormat, KindInvalidParameter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	// Validation messages are written for clients and carry no internals.
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}

	switch {
	case errors.Is(err, store.ErrAgencyNotFound):
		return "Agency not found"
	case errors.Is(err, store.ErrAgentNotFound):
		return "Agent not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrItineraryNotFound):
		return "Itinerary not found"
	case errors.Is(err, store.ErrTripNotFound):
		return "Trip not found"
	case errors.Is(err, store.ErrLodgingNotFound):
		return "Lodging not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"
	default:
		return "An unexpected error occurred"
	}
}

// errorField returns the offending field of a validation error, if any.
func errorField(err error) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Field
	}
	return ""
}

// HandleAPIError writes the error response matching err and logs the detailed
// error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, shared.ErrorResponse{
		Error: GetSafeErrorMessage(err),
		Kind:  ErrorKind(err),
		Field: errorField(err),
		Code:  MapErrorToStatusCode(err),
	}, err)
}

// translateValidation converts a validator error into a *domain.ValidationError
// for the first failing field. A missing required value is MissingField,
// every other rule is InvalidValue.
func translateValidation(err error) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return err
	}

	fe := vErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.NewValidationError(field, "is required", domain.ErrMissingField)
	case "max":
		return domain.NewValidationError(field,
			fmt.Sprintf("must be at most %s characters", fe.Param()), domain.ErrInvalidValue)
	case "gte", "min":
		return domain.NewValidationError(field,
			fmt.Sprintf("must be at least %s", fe.Param()), domain.ErrInvalidValue)
	case "gt":
		return domain.NewValidationError(field,
			fmt.Sprintf("must be greater than %s", fe.Param()), domain.ErrInvalidValue)
	case "email":
		return domain.NewValidationError(field, "must be a valid email address", domain.ErrInvalidValue)
	case "oneof":
		return domain.NewValidationError(field,
			"must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", "), domain.ErrInvalidValue)
	default:
		return domain.NewValidationError(field, "is invalid", domain.ErrInvalidValue)
	}
}

// translateDecodeError converts a JSON decoding failure into a validation
// error clients can act on.
func translateDecodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		maxErr    *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", "request body is required", domain.ErrMissingField)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError("body", "request body is not valid JSON", domain.ErrInvalidValue)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return domain.NewValidationError(field, "has the wrong type", domain.ErrInvalidValue)
	case errors.As(err, &maxErr):
		return domain.NewValidationError("body", "request body is too large", domain.ErrInvalidValue)
	case errors.Is(err, shared.ErrTrailingData):
		return domain.NewValidationError("body", err.Error(), domain.ErrInvalidValue)
	}

	// encoding/json reports unknown keys only through the message text.
	const unknownPrefix = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, unknownPrefix) {
		field := strings.Trim(strings.TrimPrefix(msg, unknownPrefix), `"`)
		return domain.NewValidationError(field, "is not a recognized field", domain.ErrInvalidValue)
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return err
	}
	return domain.NewValidationError("body", "request body is invalid", domain.ErrInvalidValue)
}
