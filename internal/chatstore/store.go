package chatstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/wattwise/wattwise/internal/domain"
)

// Storage keys, one row each in the kv table. Mirrors the device-local
// storage the mobile client uses.
const (
	keyTranscript = "wattbot:chatHistory"
	keyAIContext  = "wattbot:aiContext"
)

const welcomeText = "Hi there! 👋 I'm WattBot, your AI energy assistant. How can I help you save energy today?"

// Store persists the two chat histories — the display transcript and the
// model-context history — in a local single-file sqlite database. The two
// are different shapes on purpose: one feeds the UI, one feeds the model.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the chat database at path.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening chat database: %w", err)
	}
	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing chat schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

func (s *Store) Close() error { return s.conn.Close() }

// WelcomeTranscript is the post-clear default state: a single bot greeting.
func WelcomeTranscript(now time.Time) []domain.ChatMessage {
	return []domain.ChatMessage{{
		ID:        "1",
		Text:      welcomeText,
		FromBot:   true,
		Timestamp: now,
	}}
}

type storedMessage struct {
	ID        string `json:"id"`
	Text      string `json:"message"`
	FromBot   bool   `json:"is_bot"`
	Timestamp string `json:"timestamp"`
}

// SaveTranscript replaces the stored display transcript. Timestamps are
// serialized as RFC 3339 with nanoseconds so the instant survives the
// round trip exactly.
func (s *Store) SaveTranscript(messages []domain.ChatMessage) error {
	stored := make([]storedMessage, len(messages))
	for i, m := range messages {
		stored[i] = storedMessage{
			ID:        m.ID,
			Text:      m.Text,
			FromBot:   m.FromBot,
			Timestamp: m.Timestamp.Format(time.RFC3339Nano),
		}
	}
	return s.put(keyTranscript, stored)
}

// LoadTranscript returns the stored transcript, or the single welcome
// message when nothing has been stored yet (or the stored value cannot be
// read). It never returns nil alongside a nil error.
func (s *Store) LoadTranscript() ([]domain.ChatMessage, error) {
	raw, ok, err := s.get(keyTranscript)
	if err != nil || !ok {
		return WelcomeTranscript(time.Now()), err
	}
	var stored []storedMessage
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return WelcomeTranscript(time.Now()), fmt.Errorf("decoding transcript: %w", err)
	}
	if len(stored) == 0 {
		return WelcomeTranscript(time.Now()), nil
	}
	out := make([]domain.ChatMessage, len(stored))
	for i, m := range stored {
		ts, err := time.Parse(time.RFC3339Nano, m.Timestamp)
		if err != nil {
			return WelcomeTranscript(time.Now()), fmt.Errorf("decoding transcript timestamp: %w", err)
		}
		out[i] = domain.ChatMessage{ID: m.ID, Text: m.Text, FromBot: m.FromBot, Timestamp: ts}
	}
	return out, nil
}

// SaveContext replaces the stored model-context history.
func (s *Store) SaveContext(history []domain.HistoryItem) error {
	if history == nil {
		history = []domain.HistoryItem{}
	}
	return s.put(keyAIContext, history)
}

// LoadContext returns the stored model-context history, or an empty slice
// when nothing has been stored or the read fails.
func (s *Store) LoadContext() ([]domain.HistoryItem, error) {
	raw, ok, err := s.get(keyAIContext)
	if err != nil || !ok {
		return []domain.HistoryItem{}, err
	}
	var out []domain.HistoryItem
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []domain.HistoryItem{}, fmt.Errorf("decoding context history: %w", err)
	}
	if out == nil {
		out = []domain.HistoryItem{}
	}
	return out, nil
}

// Clear removes both histories in one transaction; a partial failure is
// reported, never swallowed.
func (s *Store) Clear() error {
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("clearing chat history: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM kv WHERE key IN (?, ?)`, keyTranscript, keyAIContext); err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing chat history: %w", err)
	}
	return tx.Commit()
}

func (s *Store) put(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = s.conn.Exec(`INSERT INTO kv(key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(payload))
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}
