package postgres

import (
	"database/sql"
	"fmt"
)

// KVRepo implements repository.KeyValueRepository on top of PostgreSQL
type KVRepo struct {
	db *sql.DB
}

// NewKVRepo creates a new key-value repository
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get returns the value stored under key
func (r *KVRepo) Get(key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM kv_store WHERE key = $1`
	err := r.db.QueryRow(query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}

	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (r *KVRepo) Set(key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
