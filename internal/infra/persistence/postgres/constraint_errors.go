package postgres

import (
	"autoconnect/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
	pgCheckViolation   = "23514"
)

// activeRequestIndex is the partial unique index guarding open requests.
const activeRequestIndex = "uq_added_vehicle_requests_active"

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgCode(err) == pgUniqueViolation
}

// isActiveRequestViolation narrows a unique violation to the open-request index.
// A translated error carries no constraint name and is taken as a duplicate request.
func isActiveRequestViolation(err error) bool {
	if !isUniqueConstraintViolation(err) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		return pgErr.ConstraintName == activeRequestIndex
	}

	return true
}

func isNotNullConstraintViolation(err error) bool {
	return pgCode(err) == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return pgCode(err) == pgCheckViolation
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
