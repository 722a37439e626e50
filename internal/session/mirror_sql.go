package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	// Supported mirror drivers.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/gtohub/admin-portal/internal/config"
)

const mirrorSchema = `
CREATE TABLE IF NOT EXISTS admin_token_mirror (
	ref        VARCHAR(64) PRIMARY KEY,
	token      TEXT NOT NULL,
	expires_at TIMESTAMP NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

// sqlMirror persists token refs in a relational table via sqlx. Expired rows
// are filtered on read and pruned opportunistically on write.
type sqlMirror struct {
	db *sqlx.DB
}

func newSQLMirror(cfg config.MirrorConfig) (*sqlMirror, error) {
	driver := cfg.Driver
	if driver == "sqlite" {
		driver = "sqlite3"
	}

	db, err := sqlx.Connect(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("session mirror: connect %s: %w", driver, err)
	}
	if _, err := db.Exec(mirrorSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("session mirror: ensure schema: %w", err)
	}
	return &sqlMirror{db: db}, nil
}

func (m *sqlMirror) Get(ctx context.Context, ref string) (string, error) {
	query := m.db.Rebind(`SELECT token, expires_at FROM admin_token_mirror WHERE ref = ?`)

	var token string
	var expires time.Time
	err := m.db.QueryRowxContext(ctx, query, ref).Scan(&token, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMirrorMiss
	}
	if err != nil {
		return "", fmt.Errorf("session mirror: get: %w", err)
	}
	if time.Now().After(expires) {
		_ = m.Delete(ctx, ref)
		return "", ErrMirrorMiss
	}
	return token, nil
}

func (m *sqlMirror) Set(ctx context.Context, ref, token string, ttl time.Duration) error {
	now := time.Now().UTC()

	// Prune anything already expired; keeps the table bounded without a
	// background job.
	prune := m.db.Rebind(`DELETE FROM admin_token_mirror WHERE expires_at < ?`)
	if _, err := m.db.ExecContext(ctx, prune, now); err != nil {
		return fmt.Errorf("session mirror: prune: %w", err)
	}

	del := m.db.Rebind(`DELETE FROM admin_token_mirror WHERE ref = ?`)
	if _, err := m.db.ExecContext(ctx, del, ref); err != nil {
		return fmt.Errorf("session mirror: replace: %w", err)
	}

	ins := m.db.Rebind(`INSERT INTO admin_token_mirror (ref, token, expires_at, created_at) VALUES (?, ?, ?, ?)`)
	if _, err := m.db.ExecContext(ctx, ins, ref, token, now.Add(ttl), now); err != nil {
		return fmt.Errorf("session mirror: insert: %w", err)
	}
	return nil
}

func (m *sqlMirror) Delete(ctx context.Context, ref string) error {
	query := m.db.Rebind(`DELETE FROM admin_token_mirror WHERE ref = ?`)
	if _, err := m.db.ExecContext(ctx, query, ref); err != nil {
		return fmt.Errorf("session mirror: delete: %w", err)
	}
	return nil
}

func (m *sqlMirror) Close() error { return m.db.Close() }
