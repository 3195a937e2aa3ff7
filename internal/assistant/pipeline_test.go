package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattwise/wattwise/internal/domain"
)

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (g *fakeGenerator) Generate(_ context.Context, _ []domain.HistoryItem, _ string) (string, error) {
	g.calls++
	return g.reply, g.err
}

type memStore struct {
	history []domain.HistoryItem
	loadErr error
	saveErr error
	saves   int
}

func (s *memStore) LoadContext() ([]domain.HistoryItem, error) {
	return s.history, s.loadErr
}

func (s *memStore) SaveContext(history []domain.HistoryItem) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.history = history
	s.saves++
	return nil
}

func TestRespondSuccessPersistsExchange(t *testing.T) {
	store := &memStore{history: []domain.HistoryItem{{Role: "user", Content: "earlier question"}}}
	gen := &fakeGenerator{reply: "Set your AC to 24°C."}
	p := NewPipeline(gen, store)

	got := p.Respond(context.Background(), "How do I cool my room cheaply?")

	assert.Equal(t, "Set your AC to 24°C.", got)
	require.Len(t, store.history, 3)
	assert.Equal(t, domain.HistoryItem{Role: "user", Content: "How do I cool my room cheaply?"}, store.history[1])
	assert.Equal(t, domain.HistoryItem{Role: "model", Content: "Set your AC to 24°C."}, store.history[2])
}

func TestRespondFailureUsesFallbackAndPersistsNothing(t *testing.T) {
	store := &memStore{}
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	p := NewPipeline(gen, store)

	got := p.Respond(context.Background(), "How can I reduce my high bill?")

	assert.Contains(t, got, "I analyzed your recent bill")
	assert.Zero(t, store.saves, "failed attempts must not be persisted")
}

func TestRespondLoadFailureStillAnswers(t *testing.T) {
	store := &memStore{loadErr: errors.New("disk unreadable")}
	gen := &fakeGenerator{reply: "Here is a tip."}
	p := NewPipeline(gen, store)

	got := p.Respond(context.Background(), "any tips?")
	assert.Equal(t, "Here is a tip.", got)
}

func TestRespondSaveFailureStillReturnsReply(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	gen := &fakeGenerator{reply: "Unplug idle electronics."}
	p := NewPipeline(gen, store)

	got := p.Respond(context.Background(), "quick win?")
	assert.Equal(t, "Unplug idle electronics.", got)
}

func TestAvailableWithoutProbe(t *testing.T) {
	p := NewPipeline(&fakeGenerator{}, &memStore{})
	assert.False(t, p.Available(context.Background()))
}
