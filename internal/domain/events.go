package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogRequested EventType = "CatalogRequested"
	EventCatalogLoaded    EventType = "CatalogLoaded"
	EventCatalogFailed    EventType = "CatalogFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogRequestedEvent asks the catalog service to load the catalog
type CatalogRequestedEvent struct{}

func (e CatalogRequestedEvent) Type() EventType { return EventCatalogRequested }

// CatalogLoadedEvent carries a successfully decoded catalog
type CatalogLoadedEvent struct {
	Items []CatalogItem
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogFailedEvent is emitted when the catalog could not be loaded.
// Reason is human readable and embeds the underlying cause.
type CatalogFailedEvent struct {
	Reason string
	Err    error
}

func (e CatalogFailedEvent) Type() EventType { return EventCatalogFailed }
