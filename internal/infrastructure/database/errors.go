package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the catalog translates into domain errors
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
)

// Constraint names declared in schema.sql
const (
	ConstraintAuthorName   = "authors_name_key"
	ConstraintBookTitle    = "books_title_key"
	ConstraintBookAuthorFK = "books_author_id_fkey"
)

// IsUniqueViolation reports whether err is a unique_violation on constraint
func IsUniqueViolation(err error, constraint string) bool {
	return isViolation(err, CodeUniqueViolation, constraint)
}

// IsForeignKeyViolation reports whether err is a foreign_key_violation on constraint
func IsForeignKeyViolation(err error, constraint string) bool {
	return isViolation(err, CodeForeignKeyViolation, constraint)
}

func isViolation(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code && pgErr.ConstraintName == constraint
}
