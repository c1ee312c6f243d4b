package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intdb "luxride/internal/db"

	"github.com/jmoiron/sqlx"
)

const mysqlTable = "driver_storage"

// MySQLStore keeps documents in a single key/payload table.
type MySQLStore struct {
	db *sqlx.DB
}

// NewMySQLStore wraps an open handle and creates the table on first use.
func NewMySQLStore(ctx context.Context, conn *sql.DB) (*MySQLStore, error) {
	s := &MySQLStore{db: sqlx.NewDb(conn, "mysql")}
	if err := s.ensureTable(ctx); err != nil {
		return nil, fmt.Errorf("ensure %s: %w", mysqlTable, err)
	}
	return s, nil
}

func (s *MySQLStore) ensureTable(ctx context.Context) error {
	if intdb.HasTable(ctx, s.db, mysqlTable) {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS driver_storage (
	storage_key VARCHAR(64) NOT NULL PRIMARY KEY,
	payload LONGTEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := s.db.ExecContext(ctx, ddl)
	return err
}

func (s *MySQLStore) Driver() string { return "mysql" }

func (s *MySQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	var payload string
	err := s.db.GetContext(ctx, &payload, `SELECT payload FROM driver_storage WHERE storage_key=? LIMIT 1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (s *MySQLStore) Put(ctx context.Context, key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO driver_storage (storage_key, payload) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE payload=VALUES(payload)
	`, key, string(value))
	return err
}

func (s *MySQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *MySQLStore) Close() error {
	return s.db.Close()
}
