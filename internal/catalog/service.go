package catalog

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"alescout/internal/eventbus"
	"alescout/internal/logging"
)

// Service answers the first CatalogRequested event with a single fetch and
// publishes the outcome. Later requests are ignored: the catalog is loaded
// once per run.
type Service struct {
	ctx     context.Context
	bus     eventbus.EventBus
	fetcher Fetcher
	once    sync.Once
	done    chan struct{}
	log     zerolog.Logger
}

// NewService creates the service and subscribes it to catalog requests.
// ctx bounds the fetch; cancelling it aborts an in-flight request.
func NewService(ctx context.Context, bus eventbus.EventBus, fetcher Fetcher) *Service {
	s := &Service{
		ctx:     ctx,
		bus:     bus,
		fetcher: fetcher,
		done:    make(chan struct{}),
		log:     logging.Component("catalog"),
	}
	bus.Subscribe(eventbus.EventCatalogRequested, s.handleRequest)
	return s
}

// Done is closed once the fetch has settled
func (s *Service) Done() <-chan struct{} {
	return s.done
}

func (s *Service) handleRequest(eventbus.DomainEvent) {
	ran := false
	s.once.Do(func() {
		ran = true
		s.load()
	})
	if !ran {
		s.log.Debug().Msg("catalog already requested, ignoring")
	}
}

func (s *Service) load() {
	defer close(s.done)

	items, err := s.fetcher.Fetch(s.ctx)
	if s.ctx.Err() != nil {
		// shutting down; nobody is left to show the result
		s.log.Info().Msg("catalog fetch abandoned on shutdown")
		return
	}
	if err != nil {
		ev := s.log.Error().Err(err)
		if code, ok := IsStatus(err); ok {
			ev = ev.Int("status", code)
		}
		ev.Msg("catalog fetch failed")
		s.bus.Publish(eventbus.CatalogFailedEvent{
			Reason: FailureMessage(err),
			Err:    err,
		})
		return
	}

	s.bus.Publish(eventbus.CatalogLoadedEvent{Items: items})
}
