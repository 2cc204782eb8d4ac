// Package hook is the extension point the persistence layer fires at
// fixed lifecycle moments. Addons register typed callbacks per event; the
// coordinator invokes them in priority order.
package hook

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// Event is a lifecycle event name.
type Event string

const (
	SchemaInit    Event = "schema_init"    // after the schema is provisioned
	Connect       Event = "connect"        // after the database connection is established
	CharacterLoad Event = "character_load" // after a character is fully reconstructed
	CharacterSave Event = "character_save" // after a character's rows are written
)

// Fn is a hook callback. payload is the fully assembled entity for the
// character events and nil for schema-init/connect.
type Fn func(ctx context.Context, event Event, payload interface{}) error

type entry struct {
	priority int
	name     string
	fn       Fn
}

// Center manages hook registrations.
type Center struct {
	mu       sync.RWMutex
	handlers map[Event][]entry
}

func NewCenter() *Center {
	return &Center{handlers: make(map[Event][]entry)}
}

// Register adds fn for event. Lower priority runs first; name is the
// handle used by Unregister.
func (c *Center) Register(event Event, priority int, name string, fn Fn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hs := append(c.handlers[event], entry{priority: priority, name: name, fn: fn})
	sort.SliceStable(hs, func(i, j int) bool { return hs[i].priority < hs[j].priority })
	c.handlers[event] = hs
}

// Unregister removes every handler registered under name for event.
func (c *Center) Unregister(event Event, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hs := c.handlers[event]
	n := 0
	for _, h := range hs {
		if h.name != name {
			hs[n] = h
			n++
		}
	}
	c.handlers[event] = hs[:n]
}

// Trigger invokes all handlers for event in priority order. Every handler
// runs even if an earlier one fails; the errors come back joined so the
// caller can log them without one broken addon silencing the rest.
func (c *Center) Trigger(ctx context.Context, event Event, payload interface{}) error {
	c.mu.RLock()
	hs := make([]entry, len(c.handlers[event]))
	copy(hs, c.handlers[event])
	c.mu.RUnlock()

	var errs []error
	for _, h := range hs {
		if err := h.fn(ctx, event, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
