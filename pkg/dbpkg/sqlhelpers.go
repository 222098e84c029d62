// Package dbpkg provides helpers to make db initialization, transactions and testing easier.
package dbpkg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-petr/pet-library/pkg/configpkg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	// Both supported drivers register themselves with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// Setup sets up a pooled connection with the database.
func Setup(config configpkg.Config) (*sql.DB, error) {
	db, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		return nil, err
	}

	if config.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(config.DBMaxOpenConns)
	}

	if config.DBMaxIdleConns > 0 {
		db.SetMaxIdleConns(config.DBMaxIdleConns)
	}

	db.SetConnMaxLifetime(config.DBConnMaxLifetime)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// ExecTx runs fn inside a single READ COMMITTED transaction.
//
// The transaction is committed only if fn returns nil. Any error, including
// a failed commit or a panic inside fn, rolls the whole transaction back.
func ExecTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	l := zerolog.Ctx(ctx)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		l.Error().Err(errors.Wrap(err, "begin tx")).Send()
		return Classify(err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				l.Error().Err(errors.Wrap(rbErr, "rollback")).Send()
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		l.Error().Err(errors.Wrap(err, "commit")).Send()
		return Classify(err)
	}

	return nil
}

// LockTable takes a SHARE ROW EXCLUSIVE lock on table for the rest of tx.
//
// The mode conflicts with itself and with row writers, so transactions that
// start with the same lock are applied one after another.
func LockTable(ctx context.Context, tx SQLInterface, table string) error {
	_, err := tx.ExecContext(ctx, fmt.Sprintf("LOCK TABLE %s IN SHARE ROW EXCLUSIVE MODE", table))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(errors.Wrapf(err, "lock table %s", table)).Send()
		return Classify(err)
	}

	return nil
}

// NullString returns a NULL for the empty string.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// WithTimeout bounds ctx by the storage timeout. A non-positive d leaves ctx without deadline.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}
