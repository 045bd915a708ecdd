package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"taskpet/internal/game"
)

// Record keys for the two independently stored documents.
const (
	KeyGameData = "gameData"
	KeyTasks    = "tasks"
)

// Store persists the game's two JSON records in the records table.
// Implements game.Store.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadGame reads the gameData record. ok is false when no save exists.
func (s *Store) LoadGame(ctx context.Context) (*game.GameState, bool, error) {
	raw, ok, err := s.get(ctx, KeyGameData)
	if err != nil || !ok {
		return nil, false, err
	}
	var state game.GameState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", KeyGameData, err)
	}
	return &state, true, nil
}

// SaveGame overwrites the gameData record wholesale.
func (s *Store) SaveGame(ctx context.Context, state *game.GameState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyGameData, err)
	}
	return s.put(ctx, KeyGameData, raw)
}

// LoadTasks reads the ordered task list. ok is false when no record exists.
func (s *Store) LoadTasks(ctx context.Context) ([]game.Task, bool, error) {
	raw, ok, err := s.get(ctx, KeyTasks)
	if err != nil || !ok {
		return nil, false, err
	}
	var tasks []game.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", KeyTasks, err)
	}
	return tasks, true, nil
}

// SaveTasks overwrites the tasks record wholesale.
func (s *Store) SaveTasks(ctx context.Context, tasks []game.Task) error {
	if tasks == nil {
		tasks = []game.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyTasks, err)
	}
	return s.put(ctx, KeyTasks, raw)
}

func (s *Store) get(ctx context.Context, key string) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("record get %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *Store) put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("record put %s: %w", key, err)
	}
	return nil
}
