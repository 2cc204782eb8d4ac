package guild

import "sync"

// Cache holds every guild with at least one online member. Guilds are
// loaded the first time one of their members logs in and stay resident
// until evicted by the caller; eviction policy lives with the owner, not
// here.
type Cache struct {
	mu     sync.RWMutex
	guilds map[string]*Guild
}

func NewCache() *Cache {
	return &Cache{guilds: make(map[string]*Guild)}
}

// Get returns the resident guild, or nil if it has not been loaded.
func (c *Cache) Get(name string) *Guild {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.guilds[name]
}

// GetOrLoad returns the resident guild, calling load exactly once to
// populate the cache when the guild is not resident yet.
func (c *Cache) GetOrLoad(name string, load func(string) (*Guild, error)) (*Guild, error) {
	c.mu.RLock()
	g := c.guilds[name]
	c.mu.RUnlock()
	if g != nil {
		return g, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another loader may have won the race while we upgraded the lock.
	if g := c.guilds[name]; g != nil {
		return g, nil
	}
	g, err := load(name)
	if err != nil {
		return nil, err
	}
	c.guilds[name] = g
	return g, nil
}

// Put inserts or replaces a resident guild.
func (c *Cache) Put(g *Guild) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guilds[g.Name] = g
}

// Remove evicts a guild.
func (c *Cache) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.guilds, name)
}

// Len reports the number of resident guilds.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.guilds)
}
