package database

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/trezcool/goose"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/fs"
)

const (
	EnginePostgres = "postgres"
	EngineSqlite   = "sqlite3"
	EngineMemory   = "memory" // no SQL database; see storage/database/inmem
)

func open(dbName string, conf *core.Config) (*sql.DB, error) {
	switch conf.Database.Engine {
	case EngineSqlite:
		if dir := filepath.Dir(conf.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrap(err, "creating database directory")
			}
		}
		db, err := sql.Open(EngineSqlite, conf.Database.Path+"?_foreign_keys=on&_busy_timeout=5000")
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(1)
		return db, nil
	case EnginePostgres:
		sslMode := "require"
		if conf.Database.DisableTLS {
			sslMode = "disable"
		}
		q := make(url.Values)
		q.Set("sslmode", sslMode)
		q.Set("timezone", "utc")

		u := url.URL{
			Scheme:   conf.Database.Engine,
			User:     url.UserPassword(conf.Database.User, conf.Database.Password),
			Host:     conf.Database.Address(),
			Path:     dbName,
			RawQuery: q.Encode(),
		}
		return sql.Open(EnginePostgres, u.String())
	default:
		return nil, errors.Errorf("unsupported database engine %q", conf.Database.Engine)
	}
}

// Open connects to the configured database and waits for it to answer.
func Open(ctx context.Context, conf *core.Config) (*sql.DB, error) {
	db, err := open(conf.Database.Name, conf)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, db *sql.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.PingContext(ctx)
		if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "DB ping")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// CreateIfNotExist creates the postgres database named in the config. It is a no-op for sqlite3.
func CreateIfNotExist(ctx context.Context, conf *core.Config) error {
	if conf.Database.Engine != EnginePostgres {
		return nil
	}
	db, err := open("postgres", conf)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer func() { _ = db.Close() }()

	if err = ping(ctx, db); err != nil {
		return errors.Wrap(err, "pinging database")
	}

	var exists bool
	err = db.QueryRowContext(ctx, "SELECT true FROM pg_database WHERE datname = $1", conf.Database.Name).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return errors.Wrap(err, "checking DB")
	}
	if !exists {
		if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(conf.Database.Name)); err != nil {
			return errors.Wrap(err, "creating database")
		}
	}
	return nil
}

// Migrate runs a goose command ("up", "down", "status", ...) against the embedded migrations.
func Migrate(db *sql.DB, engine, command string, args ...string) error {
	if err := goose.SetDialect(engine); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	if err := goose.RunFS(command, db, appfs.FS, "migrations", args...); err != nil {
		return errors.Wrapf(err, "migrating database (%s)", command)
	}
	return nil
}
