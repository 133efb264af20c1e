package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"tca/internal/logging"
)

// SQLiteKV is the durable key-value substrate, a single-table SQLite
// database at .tca/tca.db under the data directory. Method failures are
// logged and reported through the KV contract, never raised.
type SQLiteKV struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Open opens or creates the SQLite database at <dataDir>/.tca/tca.db
func Open(dataDir string, logger *logging.Logger) (*SQLiteKV, error) {
	tcaDir := filepath.Join(dataDir, ".tca")
	if err := os.MkdirAll(tcaDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .tca directory: %w", err)
	}

	dbPath := filepath.Join(tcaDir, "tca.db")

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",   // Write-Ahead Logging
		"PRAGMA synchronous=NORMAL", // Balance between safety and performance
		"PRAGMA busy_timeout=5000",  // Wait up to 5 seconds on lock
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Debug("Opened key-value database", map[string]interface{}{
		"path": dbPath,
	})

	return &SQLiteKV{conn: conn, logger: logger, dbPath: dbPath}, nil
}

// Close closes the database connection
func (s *SQLiteKV) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Path returns the location of the database file
func (s *SQLiteKV) Path() string {
	return s.dbPath
}

// Get returns the value under key
func (s *SQLiteKV) Get(key string) (string, bool) {
	var value string
	err := s.conn.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		s.logger.Warn("Key-value read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return "", false
	}
	return value, true
}

// Set stores value under key and reports success
func (s *SQLiteKV) Set(key, value string) bool {
	_, err := s.conn.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		s.logger.Warn("Key-value write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return true
}

// Remove deletes the value under key
func (s *SQLiteKV) Remove(key string) {
	if _, err := s.conn.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		s.logger.Warn("Key-value delete failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
