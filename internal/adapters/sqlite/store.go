package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"propTracker/internal/domain"
	"propTracker/internal/ports"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store implements the ports.StateStore interface using SQLite.
//
// The trading state is persisted as a single JSON snapshot keyed by account
// identifier. encoding/json serializes time.Time as RFC 3339 with nanoseconds,
// so entry and close timestamps round-trip exactly.
type Store struct {
	db        *sql.DB
	accountID string
	logger    ports.Logger
}

// Config holds configuration for the SQLite state store.
type Config struct {
	DBPath    string
	AccountID string // Key for the persisted snapshot, e.g. the account's email
	Logger    ports.Logger
}

// NewStore creates a new SQLite state store instance.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for SQLite store")
	}
	if cfg.AccountID == "" {
		return nil, fmt.Errorf("account ID is required for SQLite store: %w", ports.ErrConfigurationError)
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "./data/prop_tracker.db" // Default path
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		err = fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(dbPath), err)
		cfg.Logger.Error(context.Background(), err, "SQLite store initialization failed")
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000") // WAL mode for better concurrency
	if err != nil {
		err = fmt.Errorf("failed to open database at '%s': %w", dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite store initialization failed")
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		err = fmt.Errorf("failed to ping database at '%s': %w: %w", dbPath, ports.ErrDBConnection, err)
		cfg.Logger.Error(context.Background(), err, "SQLite store initialization failed")
		return nil, err
	}

	// SQLite handles concurrency internally; the Go driver benefits from a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	store := &Store{db: db, accountID: cfg.AccountID, logger: cfg.Logger}

	if err := store.initializeSchema(context.Background()); err != nil {
		db.Close()
		err = fmt.Errorf("failed to initialize database schema: %w", err)
		cfg.Logger.Error(context.Background(), err, "SQLite store initialization failed")
		return nil, err
	}
	cfg.Logger.Info(context.Background(), "SQLite state store ready", map[string]interface{}{
		"path":      dbPath,
		"accountID": cfg.AccountID,
	})

	return store, nil
}

// initializeSchema creates the snapshot table if it doesn't exist.
func (s *Store) initializeSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS trading_state (
		account_id TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to execute schema initialization: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		s.logger.Info(context.Background(), "Closing SQLite state store")
		return s.db.Close()
	}
	return nil
}

// Save persists the complete trading state, replacing any previous snapshot
// for the account.
func (s *Store) Save(ctx context.Context, state *domain.TradingState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode trading state for account %s: %w", s.accountID, err)
	}

	const query = `
	INSERT INTO trading_state (account_id, payload, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(account_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query, s.accountID, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save trading state for account %s: %w: %w", s.accountID, ports.ErrUpdateFailed, err)
	}
	s.logger.Debug(ctx, "Trading state saved", map[string]interface{}{
		"accountID": s.accountID,
		"trades":    len(state.Trades),
		"open":      len(state.OpenPositions),
	})
	return nil
}

// Load retrieves the persisted state for the account.
// Returns nil, nil if no snapshot has been saved yet.
func (s *Store) Load(ctx context.Context) (*domain.TradingState, error) {
	const query = `SELECT payload FROM trading_state WHERE account_id = ?`

	var payload string
	err := s.db.QueryRowContext(ctx, query, s.accountID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug(ctx, "No persisted state for account", map[string]interface{}{"accountID": s.accountID})
			return nil, nil // Not an error, just not found
		}
		return nil, fmt.Errorf("failed to load trading state for account %s: %w: %w", s.accountID, ports.ErrQueryFailed, err)
	}

	state := &domain.TradingState{}
	if err := json.Unmarshal([]byte(payload), state); err != nil {
		return nil, fmt.Errorf("failed to decode trading state for account %s: %w: %w", s.accountID, ports.ErrCorruptState, err)
	}
	return state, nil
}

// Clear removes the persisted state for the account, if any.
func (s *Store) Clear(ctx context.Context) error {
	const query = `DELETE FROM trading_state WHERE account_id = ?`
	if _, err := s.db.ExecContext(ctx, query, s.accountID); err != nil {
		return fmt.Errorf("failed to clear trading state for account %s: %w: %w", s.accountID, ports.ErrDeleteFailed, err)
	}
	s.logger.Info(ctx, "Trading state cleared", map[string]interface{}{"accountID": s.accountID})
	return nil
}
