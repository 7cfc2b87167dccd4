package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// txStarter is satisfied by *pgxpool.Pool.
type txStarter interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

const pgUniqueViolation = "23505"

// whereLive joins conds with the soft-delete filter for the given table alias.
// Every finder goes through it so deleted rows never leak into reads.
func whereLive(alias string, conds ...string) string {
	live := "is_deleted = FALSE"
	if alias != "" {
		live = alias + "." + live
	}
	return "WHERE " + strings.Join(append([]string{live}, conds...), " AND ")
}

// mapWriteError turns driver errors into application errors.
func mapWriteError(err error, desc string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, desc)
	}
	return fmt.Errorf("failed to %s: %w", desc, err)
}

// collectOne scans exactly one row into T, mapping no rows to ErrNotFound.
func collectOne[T any](rows pgx.Rows, err error, desc string) (*T, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", desc, err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, desc)
		}
		return nil, fmt.Errorf("failed to scan %s: %w", desc, err)
	}
	return &v, nil
}

// collectAll scans every row into a slice of T.
func collectAll[T any](rows pgx.Rows, err error, desc string) ([]T, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", desc, err)
	}
	vs, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", desc, err)
	}
	return vs, nil
}

// argList builds positional placeholders while a WHERE clause is assembled.
type argList struct {
	args []any
}

func (a *argList) add(v any) string {
	a.args = append(a.args, v)
	return fmt.Sprintf("$%d", len(a.args))
}
