// Package state models the catalog fetch lifecycle as a closed set of
// states, so that "loading with an error" cannot be expressed.
package state

import "alescout/internal/domain"

// LoadState is one of Idle, Loading, Loaded or Failed
type LoadState interface {
	isLoadState()
}

// Idle is the state before the fetch has been issued
type Idle struct{}

// Loading means the single fetch is in flight
type Loading struct{}

// Loaded holds the decoded catalog
type Loaded struct {
	Items []domain.CatalogItem
}

// Failed holds the message shown to the user
type Failed struct {
	Message string
}

func (Idle) isLoadState()    {}
func (Loading) isLoadState() {}
func (Loaded) isLoadState()  {}
func (Failed) isLoadState()  {}

// Start moves Idle to Loading. Any other state is returned unchanged with
// ok=false: the catalog is fetched once.
func Start(s LoadState) (next LoadState, ok bool) {
	if _, idle := s.(Idle); idle || s == nil {
		return Loading{}, true
	}
	return s, false
}

// Succeed moves Loading to Loaded
func Succeed(s LoadState, items []domain.CatalogItem) (LoadState, bool) {
	if _, loading := s.(Loading); !loading {
		return s, false
	}
	return Loaded{Items: items}, true
}

// Fail moves Loading to Failed
func Fail(s LoadState, message string) (LoadState, bool) {
	if _, loading := s.(Loading); !loading {
		return s, false
	}
	return Failed{Message: message}, true
}

// IsLoading reports whether the fetch is in flight
func IsLoading(s LoadState) bool {
	_, ok := s.(Loading)
	return ok
}

// Items returns the loaded catalog, if any
func Items(s LoadState) ([]domain.CatalogItem, bool) {
	l, ok := s.(Loaded)
	return l.Items, ok
}

// Error returns the failure message, if any
func Error(s LoadState) (string, bool) {
	f, ok := s.(Failed)
	return f.Message, ok
}

// Name returns a short label for logs
func Name(s LoadState) string {
	switch s.(type) {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}
