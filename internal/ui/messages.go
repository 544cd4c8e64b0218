package ui

import (
	"alescout/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchCommittedMsg carries a search term that survived the debounce delay
type searchCommittedMsg struct {
	term string
}

// helpPagerMsg is sent when the help pager exits
type helpPagerMsg struct {
	err error
}
