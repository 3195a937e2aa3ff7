package chatstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattwise/wattwise/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTranscriptRoundTrip(t *testing.T) {
	s := openTestStore(t)

	sent := time.Date(2025, 6, 10, 18, 30, 12, 345678000, time.UTC)
	in := []domain.ChatMessage{
		{ID: "1", Text: "Hi there! How can I help?", FromBot: true, Timestamp: sent},
		{ID: "2", Text: "How do I save energy?", FromBot: false, Timestamp: sent.Add(30 * time.Second)},
		{ID: "3", Text: "Raise your AC to 24°C.", FromBot: true, Timestamp: sent.Add(45 * time.Second)},
	}
	require.NoError(t, s.SaveTranscript(in))

	out, err := s.LoadTranscript()
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Text, out[i].Text)
		assert.Equal(t, in[i].FromBot, out[i].FromBot)
		assert.True(t, in[i].Timestamp.Equal(out[i].Timestamp), "timestamp instant must survive the round trip")
	}
}

func TestLoadTranscriptEmptyStoreReturnsWelcome(t *testing.T) {
	s := openTestStore(t)

	out, err := s.LoadTranscript()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].FromBot)
	assert.Contains(t, out[0].Text, "WattBot")
}

func TestContextRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := []domain.HistoryItem{
		{Role: "user", Content: "why is my bill high?"},
		{Role: "model", Content: "Your AC usage went up 30%."},
	}
	require.NoError(t, s.SaveContext(in))

	out, err := s.LoadContext()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadContextEmptyStore(t *testing.T) {
	s := openTestStore(t)

	out, err := s.LoadContext()
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestClearResetsBothHistories(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveTranscript([]domain.ChatMessage{
		{ID: "1", Text: "hello", FromBot: false, Timestamp: time.Now()},
		{ID: "2", Text: "hi!", FromBot: true, Timestamp: time.Now()},
	}))
	require.NoError(t, s.SaveContext([]domain.HistoryItem{{Role: "user", Content: "hello"}}))

	require.NoError(t, s.Clear())

	transcript, err := s.LoadTranscript()
	require.NoError(t, err)
	require.Len(t, transcript, 1)
	assert.True(t, transcript[0].FromBot)

	history, err := s.LoadContext()
	require.NoError(t, err)
	assert.Empty(t, history)
}
