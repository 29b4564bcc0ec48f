package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const kvSchema = `CREATE TABLE IF NOT EXISTS gym_kv (
	key   TEXT PRIMARY KEY,
	value JSONB NOT NULL
)`

// PostgresBackend stores each key as a row in a single key-value table.
type PostgresBackend struct {
	db *sql.DB
}

// NewPostgresBackend opens the connection, verifies it with a ping and
// ensures the key-value table exists.
func NewPostgresBackend(host, port, user, password, dbname, sslmode string) (*PostgresBackend, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", ErrStorageError, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: connecting to database: %v", ErrStorageError, err)
	}
	if _, err := db.Exec(kvSchema); err != nil {
		return nil, fmt.Errorf("%w: creating gym_kv table: %v", ErrStorageError, err)
	}
	return &PostgresBackend{db: db}, nil
}

// Get reads the blob stored for key.
func (b *PostgresBackend) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM gym_kv WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: getting key %s: %v", ErrStorageError, key, err)
	}
	return value, nil
}

// Set upserts the blob for key.
func (b *PostgresBackend) Set(key string, value []byte) error {
	_, err := b.db.Exec(
		`INSERT INTO gym_kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: setting key %s: %v", ErrStorageError, key, err)
	}
	return nil
}

// Remove deletes the row for key. Removing an absent key is a no-op.
func (b *PostgresBackend) Remove(key string) error {
	if _, err := b.db.Exec(`DELETE FROM gym_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%w: removing key %s: %v", ErrStorageError, key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (b *PostgresBackend) Close() error {
	return b.db.Close()
}
