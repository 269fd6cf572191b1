// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect identifies the SQL database behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB is an open connection pool together with the knowledge needed to
// speak its dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Dialect returns the dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	switch db.dialect {
	case DialectSQLite:
		return migrations.Migrate(db.DB, migrations.DialectSQLite)
	default:
		return migrations.Migrate(db.DB, migrations.DialectPostgres)
	}
}

// builder returns a squirrel statement builder using the dialect's
// placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err)
}

func (db *DB) isRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// dialectFromDSN picks the database from the DSN scheme. Anything that is
// not explicitly SQLite is handed to the postgres driver, which accepts both
// URLs and key=value connection strings.
func dialectFromDSN(dsn string) (Dialect, string) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "sqlite3://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite3://")
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn
	default:
		return DialectPostgres, dsn
	}
}

// NewConnect opens the database named by cfg.DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn := dialectFromDSN(cfg.DSN)
	if dsn == "" {
		return nil, ErrUnsupportedDSN
	}

	if dialect == DialectSQLite {
		return NewConnectSQLite(ctx, dsn, log)
	}
	return NewConnectPostgres(ctx, dsn, log)
}
