package eventbus

import (
	"runtime/debug"
	"sync"

	"alescout/internal/domain"
	"alescout/internal/logging"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCatalogRequested = domain.EventCatalogRequested
	EventCatalogLoaded    = domain.EventCatalogLoaded
	EventCatalogFailed    = domain.EventCatalogFailed
)

// Re-export domain event types
type CatalogRequestedEvent = domain.CatalogRequestedEvent
type CatalogLoadedEvent = domain.CatalogLoadedEvent
type CatalogFailedEvent = domain.CatalogFailedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 64),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. Events published after
// Close, or while the queue is full, are dropped.
func (b *bus) Publish(event DomainEvent) {
	log := logging.Component("eventbus")
	log.Debug().Str("event", string(event.Type())).Msg("publishing event")

	select {
	case <-b.quit:
		log.Warn().Str("event", string(event.Type())).Msg("event bus closed, dropping event")
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Warn().Str("event", string(event.Type())).Msg("event bus channel full, dropping event")
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Queued events that were not yet dispatched are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log := logging.Component("eventbus")
							log.Error().
								Str("event", string(eventType)).
								Interface("panic", r).
								Bytes("stack", debug.Stack()).
								Msg("event handler panic")
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
