// Package sqlite provides a SQLite-backed notification journal.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/tilequest/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/tilequest/internal/services/game/session"
	"github.com/louisbranch/tilequest/internal/services/game/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists session notifications in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the journal database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendNotifications stores notifications for a session in one transaction.
func (s *Store) AppendNotifications(ctx context.Context, sessionID string, notifications []session.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if len(notifications) == 0 {
		return nil
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append notifications: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO notifications (session_id, seq, message, created_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare append notifications: %w", err)
	}
	defer stmt.Close()
	for _, n := range notifications {
		if _, err := stmt.ExecContext(ctx, sessionID, n.Seq, n.Message, toMillis(n.CreatedAt)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert notification %d: %w", n.Seq, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append notifications: %w", err)
	}
	return nil
}

// ListNotifications returns a session's notifications in emission order.
func (s *Store) ListNotifications(ctx context.Context, sessionID string) ([]session.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT seq, message, created_at FROM notifications WHERE session_id = ? ORDER BY seq",
		strings.TrimSpace(sessionID))
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []session.Notification
	for rows.Next() {
		var (
			n         session.Notification
			createdAt int64
		)
		if err := rows.Scan(&n.Seq, &n.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.CreatedAt = fromMillis(createdAt)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return notifications, nil
}

var _ session.Journal = (*Store)(nil)
