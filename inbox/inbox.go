// Package inbox maps user ids to the files holding their messages.
package inbox

import "maps"

// DefaultFallback is the inbox of users not in the table
const DefaultFallback = "notifications.txt"

// DefaultTable maps ids of headquarters personnel (hqp) and police officers
// (po1..po5) to their inbox files
var DefaultTable = map[string]string{
	"hqp": "inboxMessages/headquartersInbox",
	"po1": "inboxMessages/PO1",
	"po2": "inboxMessages/PO2",
	"po3": "inboxMessages/PO3",
	"po4": "inboxMessages/PO4",
	"po5": "inboxMessages/PO5",
}

// Paths is an immutable user id => inbox path table
type Paths struct {
	byUser   map[string]string
	fallback string
}

// New creates a table. byUser is copied. Empty fallback means DefaultFallback.
func New(byUser map[string]string, fallback string) *Paths {
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Paths{
		byUser:   maps.Clone(byUser),
		fallback: fallback,
	}
}

// For returns the inbox path of userID
func (p *Paths) For(userID string) string {
	if path, ok := p.byUser[userID]; ok {
		return path
	}
	return p.fallback
}
