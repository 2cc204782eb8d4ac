package player

import (
	"context"
	"sync"

	"github.com/lunaria-games/mmoserver/presence"
	"go.uber.org/zap"
)

// Registry is the process-wide map of online players, keyed by character
// name. Guild loading reads it to prefer live member data over persisted
// rows, and the periodic checkpoint snapshots it to save the whole world.
// Registrations are mirrored into the presence store.
type Registry struct {
	mu       sync.RWMutex
	players  map[string]*Player
	presence presence.Store
	logger   *zap.Logger
}

// NewRegistry creates a Registry. ps may be nil when no presence mirror
// is wanted.
func NewRegistry(ps presence.Store, logger *zap.Logger) *Registry {
	return &Registry{
		players:  make(map[string]*Player),
		presence: ps,
		logger:   logger,
	}
}

// Register adds a player, displacing any previous entry under the same
// name (duplicate login / reconnect).
func (r *Registry) Register(p *Player) {
	r.mu.Lock()
	if _, ok := r.players[p.Name]; ok {
		r.logger.Info("duplicate player entry displaced", zap.String("name", p.Name))
	}
	r.players[p.Name] = p
	r.mu.Unlock()

	if r.presence != nil {
		if err := r.presence.Set(context.Background(), p.Name, p.Level); err != nil {
			r.logger.Warn("presence mirror set failed",
				zap.String("name", p.Name), zap.Error(err))
		}
	}
	r.logger.Info("player registered online", zap.String("name", p.Name))
}

// Unregister removes a player by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.players, name)
	r.mu.Unlock()

	if r.presence != nil {
		if err := r.presence.Remove(context.Background(), name); err != nil {
			r.logger.Warn("presence mirror remove failed",
				zap.String("name", name), zap.Error(err))
		}
	}
	r.logger.Info("player unregistered", zap.String("name", name))
}

// Get returns the online player with the given name, or nil.
func (r *Registry) Get(name string) *Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players[name]
}

// All returns a snapshot of every online player.
func (r *Registry) All() []*Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	return out
}

// Count reports how many players are online.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}
