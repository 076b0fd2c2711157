// Package storage provides SQLite-based persistence for play history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for play history.
type Store struct {
	db *sql.DB
}

// Session is one finished run of a prototype.
type Session struct {
	ID        int64
	SessionID uuid.UUID
	GameID    string
	User      string // Local user or SSH user name
	Frames    uint64 // Frames the game updated
	Duration  time.Duration
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string
	Sessions    int
	TotalFrames int64
	MostFrames  int64
	TotalTime   time.Duration
	LastPlayed  time.Time
}

const sessionColumns = `id, session_id, game_id, user, frames, duration_ms, created_at`

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT '',
			frames INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(game_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session. A zero SessionID is replaced
// with a fresh random one. Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.SessionID == uuid.Nil {
		sess.SessionID = uuid.New()
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (session_id, game_id, user, frames, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		sess.SessionID.String(), sess.GameID, sess.User, int64(sess.Frames), sess.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SessionByID retrieves a session by its uuid. Returns nil if not found.
func (s *Store) SessionByID(id uuid.UUID) (*Session, error) {
	row := s.db.QueryRow(
		`SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`,
		id.String(),
	)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &sess, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
// An empty gameID returns sessions of every game.
func (s *Store) RecentSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions`
	args := []any{}
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ClearSessions deletes all sessions for the given game.
func (s *Store) ClearSessions(gameID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var totalMS int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0), COALESCE(MAX(frames), 0),
		        COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Sessions, &stats.TotalFrames, &stats.MostFrames, &totalMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.TotalTime = time.Duration(totalMS) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), SUM(frames), MAX(frames), SUM(duration_ms), MAX(created_at)
		 FROM sessions
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var totalMS int64
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.Sessions, &gs.TotalFrames, &gs.MostFrames, &totalMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.TotalTime = time.Duration(totalMS) * time.Millisecond
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var (
		sess       Session
		sessionID  string
		frames     int64
		durationMS int64
		createdAt  any
	)
	if err := row.Scan(&sess.ID, &sessionID, &sess.GameID, &sess.User, &frames, &durationMS, &createdAt); err != nil {
		return Session{}, err
	}

	id, err := uuid.Parse(sessionID)
	if err != nil {
		return Session{}, fmt.Errorf("bad session id %q: %w", sessionID, err)
	}
	sess.SessionID = id
	sess.Frames = uint64(frames)
	sess.Duration = time.Duration(durationMS) * time.Millisecond
	sess.CreatedAt = parseTime(createdAt)
	return sess, nil
}

// parseTime handles both time.Time and the string form SQLite returns
// for CURRENT_TIMESTAMP.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
