package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a point lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable is returned when no working connection to the store
	// can be obtained.
	ErrUnavailable = errors.New("database unavailable")
)

const pgUniqueViolation = "23505"

// ConflictError reports an insert rejected by a uniqueness constraint.
// Field names the offending column when the driver exposes it.
type ConflictError struct {
	Field string
	Err   error
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "duplicate value violates a unique constraint"
	}
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// Classify translates raw driver errors into ErrUnavailable or *ConflictError.
// Errors it does not recognise are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var conflict *ConflictError
	if errors.As(err, &conflict) || errors.Is(err, ErrUnavailable) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return &ConflictError{Field: pgConflictField(pgErr), Err: err}
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			// connection exceptions and operator intervention (shutdown)
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
			return &ConflictError{Field: sqliteConflictField(sqliteErr.Error()), Err: err}
		case sqliteErr.Code == sqlite3.ErrCantOpen:
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) ||
		errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		strings.Contains(err.Error(), "sql: database is closed") {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return err
}

// pgConflictField extracts the column from a detail such as
// "Key (isbn)=(978-0441013593) already exists.", falling back to the
// constraint name gorm generates (idx_<table>_<column>).
func pgConflictField(pgErr *pgconn.PgError) string {
	if start := strings.Index(pgErr.Detail, "Key ("); start >= 0 {
		rest := pgErr.Detail[start+len("Key ("):]
		if end := strings.Index(rest, ")="); end > 0 {
			return rest[:end]
		}
	}
	name := pgErr.ConstraintName
	for _, prefix := range []string{"idx_", "uni_"} {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name[len(prefix):], pgErr.TableName+"_")
			break
		}
	}
	return name
}

// sqliteConflictField extracts the column from "UNIQUE constraint failed: libro.isbn".
func sqliteConflictField(msg string) string {
	_, cols, found := strings.Cut(msg, "constraint failed: ")
	if !found {
		return ""
	}
	first, _, _ := strings.Cut(cols, ",")
	if _, column, ok := strings.Cut(strings.TrimSpace(first), "."); ok {
		return column
	}
	return strings.TrimSpace(first)
}
