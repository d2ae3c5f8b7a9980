package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/migrations"
)

// NewConnectSQLite opens the profile table in a local SQLite file so the
// server runs without PostgreSQL. A missing parent directory is created.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if dir := sqliteDir(cfg.DSN); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Str("dir", dir).Msg("cannot create database directory")
			return nil, fmt.Errorf("sqlite: create %s: %w", dir, err)
		}
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("cannot open sqlite database")
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// one writer at a time; also keeps ":memory:" on a single connection
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("sqlite ping failed")
		conn.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("sqlite database ready")

	return &DB{
		DB:          conn,
		dialect:     migrations.DialectSQLite,
		placeholder: sq.Question,
		logger:      log,
	}, nil
}

// sqliteDir returns the directory of a file DSN, or "" for in-memory
// databases and files in the working directory.
func sqliteDir(dsn string) string {
	name := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == ":memory:" {
		return ""
	}
	if dir := filepath.Dir(name); dir != "." {
		return dir
	}
	return ""
}
