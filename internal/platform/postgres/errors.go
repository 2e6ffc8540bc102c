package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// MapError maps a database error to an appropriate domain or store error.
// notFound is returned for sql.ErrNoRows; pass the entity-specific sentinel
// (e.g. store.ErrTripNotFound). The original error is kept in the chain.
func MapError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		if notFound == nil {
			notFound = store.ErrNotFound
		}
		return notFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolationCode:
		if strings.Contains(pgErr.ConstraintName, "email") {
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case foreignKeyViolationCode:
		field := foreignKeyField(pgErr)
		return domain.NewValidationError(field, "references a record that does not exist",
			fmt.Errorf("%w: %v", domain.ErrInvalidValue, err))
	case checkViolationCode:
		return domain.NewValidationError(checkField(pgErr.ConstraintName), "violates a constraint",
			fmt.Errorf("%w: %v", domain.ErrInvalidValue, err))
	case notNullViolationCode:
		return domain.NewValidationError(pgErr.ColumnName, "is required",
			fmt.Errorf("%w: %v", domain.ErrMissingField, err))
	}

	return err
}

// foreignKeyField derives the referencing column from a constraint named
// <table>_<column>_fkey, which is how the migrations name them.
func foreignKeyField(pgErr *pgconn.PgError) string {
	name := strings.TrimSuffix(pgErr.ConstraintName, "_fkey")
	if pgErr.TableName != "" {
		name = strings.TrimPrefix(name, pgErr.TableName+"_")
	}
	return name
}

// checkField derives the field name from a constraint named
// <table>_<field>_check; multi-column checks such as the date range come out
// as "date_range".
func checkField(constraint string) string {
	name := strings.TrimSuffix(constraint, "_check")
	if i := strings.Index(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected, it returns notFound.
// UPDATE and DELETE use it to detect a target that does not exist.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
