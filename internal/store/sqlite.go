package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/Mangesh2904/EdunovaBackend/internal/pipeline"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS chat_exchanges (
        id TEXT PRIMARY KEY, -- UUID
        user_id TEXT NOT NULL,
        user_message TEXT NOT NULL,
        bot_response TEXT NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_chat_exchanges_user ON chat_exchanges (user_id, created_at);

    CREATE TABLE IF NOT EXISTS placements (
        id TEXT PRIMARY KEY, -- UUID
        user_id TEXT NOT NULL,
        company_name TEXT NOT NULL,
        role TEXT NOT NULL,
        questions_json TEXT NOT NULL,
        concepts TEXT NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_placements_user ON placements (user_id, created_at);
    `
	_, err := s.db.Exec(schema)
	return err
}

// SaveChatExchange appends one chat request/response pair for a user.
func (s *SQLiteStore) SaveChatExchange(exchange *ChatExchange) error {
	exchange.ID = uuid.NewString()
	exchange.CreatedAt = time.Now()

	stmt, err := s.db.Prepare("INSERT INTO chat_exchanges (id, user_id, user_message, bot_response, created_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare chat exchange insert: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(exchange.ID, exchange.UserID, exchange.UserMessage, exchange.BotResponse, exchange.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute chat exchange insert: %w", err)
	}
	return nil
}

// ChatHistoryByUser returns a user's chat exchanges, most recent first.
func (s *SQLiteStore) ChatHistoryByUser(userID string) ([]ChatExchange, error) {
	rows, err := s.db.Query("SELECT id, user_id, user_message, bot_response, created_at FROM chat_exchanges WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat exchanges: %w", err)
	}
	defer rows.Close()

	var history []ChatExchange
	for rows.Next() {
		var exchange ChatExchange
		if err := rows.Scan(&exchange.ID, &exchange.UserID, &exchange.UserMessage, &exchange.BotResponse, &exchange.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat exchange row: %w", err)
		}
		history = append(history, exchange)
	}
	return history, rows.Err()
}

// SavePlacement appends one placement generation for a user. Questions are
// stored as a JSON column alongside the markdown guide.
func (s *SQLiteStore) SavePlacement(record *PlacementRecord) error {
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()

	questionsJSON, err := json.Marshal(record.Questions)
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}

	stmt, err := s.db.Prepare("INSERT INTO placements (id, user_id, company_name, role, questions_json, concepts, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare placement insert: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(record.ID, record.UserID, record.CompanyName, record.Role, string(questionsJSON), record.Concepts, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute placement insert: %w", err)
	}
	return nil
}

// PlacementHistoryByUser returns a user's placement records, most recent
// first. A row whose stored questions no longer unmarshal is returned with
// an empty question list rather than dropped.
func (s *SQLiteStore) PlacementHistoryByUser(userID string) ([]PlacementRecord, error) {
	rows, err := s.db.Query("SELECT id, user_id, company_name, role, questions_json, concepts, created_at FROM placements WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query placements: %w", err)
	}
	defer rows.Close()

	var history []PlacementRecord
	for rows.Next() {
		var record PlacementRecord
		var questionsJSON string
		if err := rows.Scan(&record.ID, &record.UserID, &record.CompanyName, &record.Role, &questionsJSON, &record.Concepts, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan placement row: %w", err)
		}
		if err := json.Unmarshal([]byte(questionsJSON), &record.Questions); err != nil {
			log.Printf("Warning: failed to unmarshal questions for placement %s: %v", record.ID, err)
			record.Questions = []pipeline.QuizQuestion{}
		}
		history = append(history, record)
	}
	return history, rows.Err()
}
