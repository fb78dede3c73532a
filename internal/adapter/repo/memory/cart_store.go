package memory

import (
	"sync"

	"tamaverse/internal/app/ports"
)

// CartStore holds the ephemeral cart and at most one pending checkout.
type CartStore struct {
	mu      sync.Mutex
	items   map[string]int
	pending *ports.PendingPurchase
}

func NewCartStore() *CartStore {
	return &CartStore{items: make(map[string]int)}
}

func (c *CartStore) Snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

func (c *CartStore) Add(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id]++
}

func (c *CartStore) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items[id] > 0 {
		c.items[id]--
	}
	if c.items[id] == 0 {
		delete(c.items, id)
	}
}

func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]int)
}

func (c *CartStore) SetPending(p ports.PendingPurchase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = &p
}

func (c *CartStore) Pending(token string) (ports.PendingPurchase, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil || c.pending.Token != token {
		return ports.PendingPurchase{}, false
	}
	return *c.pending, true
}

func (c *CartStore) ClearPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}
