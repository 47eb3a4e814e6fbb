package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"transfer-booking/internal/pkg/errs"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TxBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultTxAttempts = 4
	defaultTxDelay    = 50 * time.Millisecond
	defaultTxMaxDelay = time.Second
)

func RunInTx[T any](ctx context.Context, db TxBeginner, opts pgx.TxOptions, fn func(tx DBTX) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return zero, errs.Mark(err, ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			// Only log rollback errors for uncommitted transactions
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err = tx.Commit(ctx); err != nil {
		return zero, errs.Mark(err, ErrTransactionCommit)
	}

	return result, nil
}

// RunInTxWithRetry re-runs fn in a fresh transaction on serialization failures and deadlocks.
func RunInTxWithRetry[T any](ctx context.Context, db TxBeginner, opts pgx.TxOptions, fn func(tx DBTX) (T, error)) (T, error) {
	var result T
	attempt := 0

	err := retry.Do(
		func() error {
			attempt++
			r, err := RunInTx(ctx, db, opts, fn)
			if err != nil {
				return err
			}
			result = r
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(defaultTxAttempts),
		retry.Delay(defaultTxDelay),
		retry.MaxDelay(defaultTxMaxDelay),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.MaxJitter(defaultTxDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryableError),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("retrying transaction due to retryable error",
				"attempt", n+1,
				"error", err.Error())
		}),
	)
	if err != nil {
		var zero T
		if IsRetryableError(err) && attempt >= defaultTxAttempts {
			slog.Error("transaction failed after max retries", "attempts", attempt, "error", err.Error())
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}
		return zero, err
	}
	return result, nil
}

func IsRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// Pool is the subset of *pgxpool.Pool the repositories need.
type Pool interface {
	DBTX
	TxBeginner
}
