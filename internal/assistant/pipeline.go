package assistant

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/wattwise/wattwise/internal/domain"
)

// Unavailable is a Generator with no remote backend; every call fails, so a
// pipeline built on it always answers from the fallback rules.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, []domain.HistoryItem, string) (string, error) {
	return "", errors.New("no remote model configured")
}

// ContextStore is the slice of the conversation store the pipeline needs.
type ContextStore interface {
	LoadContext() ([]domain.HistoryItem, error)
	SaveContext([]domain.HistoryItem) error
}

// Availability lets the presentation layer surface degraded mode. Optional.
type Availability interface {
	Ping(ctx context.Context) bool
}

// Pipeline turns a user message into a display-ready reply: load context,
// call the model, persist the exchange; on any model failure, answer from
// the local fallback rules and persist nothing.
type Pipeline struct {
	gen   Generator
	store ContextStore
}

func NewPipeline(gen Generator, store ContextStore) *Pipeline {
	return &Pipeline{gen: gen, store: store}
}

// Respond never returns an error; the caller always gets something to show.
func (p *Pipeline) Respond(ctx context.Context, message string) string {
	history, err := p.store.LoadContext()
	if err != nil {
		log.Error().Err(err).Msg("loading assistant context")
		history = nil
	}

	reply, err := p.gen.Generate(ctx, history, message)
	if err != nil {
		log.Warn().Err(err).Msg("remote model failed, using fallback")
		return FallbackResponse(message)
	}

	updated := append(history,
		domain.HistoryItem{Role: "user", Content: message},
		domain.HistoryItem{Role: "model", Content: reply},
	)
	// Persistence is best-effort: a failed save must not cost the user
	// the reply they already have.
	if err := p.store.SaveContext(updated); err != nil {
		log.Error().Err(err).Msg("saving assistant context")
	}
	return reply
}

// Available reports whether the remote model answers right now. A generator
// without a Ping probe reports false.
func (p *Pipeline) Available(ctx context.Context) bool {
	probe, ok := p.gen.(Availability)
	if !ok {
		return false
	}
	return probe.Ping(ctx)
}
