// Package pgsql implements the repository ports on PostgreSQL via pgx.
package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
)

const uniqueViolationCode = "23505"

// BaseRepository carries the shared connection pool.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// isConnectivityError reports whether err is an infrastructure failure
// (database unreachable or timed out) rather than a statement error.
func isConnectivityError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return pgconn.Timeout(err)
}

// mapReadError normalizes driver errors on query paths. Connectivity
// failures surface as apperrors.ErrUnavailable so callers can tell a
// retry-safe outage from a bug.
func mapReadError(err error) error {
	if err == nil {
		return nil
	}
	if isConnectivityError(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	return err
}

// mapWriteError normalizes driver errors into application sentinels.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicate
	}
	return mapReadError(err)
}

// NewRepositoryProvider wires every PostgreSQL repository on one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: pool}
	return &portsrepo.RepositoryProvider{
		InvoiceRepo:         &InvoiceRepository{BaseRepository: base},
		PaymentRepo:         &PaymentRepository{BaseRepository: base},
		AllocationRepo:      &AllocationRepository{BaseRepository: base},
		BankTransactionRepo: &BankTransactionRepository{BaseRepository: base},
		CurrencyRepo:        &CurrencyRepository{BaseRepository: base},
		UserRepo:            &UserRepository{BaseRepository: base},
	}
}
