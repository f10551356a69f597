// Package app contains the application services that implement the primary
// ports by orchestrating the core logic and the secondary adapters.
package app

import (
	"sort"
	"sync"
)

// AdminRegistry is the set of admin chats receiving escalation broadcasts.
// Membership changes only on the explicit subscribe and unsubscribe edges of
// the admin dialogue, never on restart.
type AdminRegistry struct {
	mu      sync.Mutex
	members map[int64]struct{}
}

// NewAdminRegistry creates an empty registry.
func NewAdminRegistry() *AdminRegistry {
	return &AdminRegistry{members: make(map[int64]struct{})}
}

// Add registers an admin chat. Adding an existing member is a no-op.
func (r *AdminRegistry) Add(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[chatID] = struct{}{}
}

// Remove drops an admin chat. Removing a non-member is a no-op.
func (r *AdminRegistry) Remove(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, chatID)
}

// Snapshot returns the current membership in stable order.
func (r *AdminRegistry) Snapshot() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, 0, len(r.members))
	for id := range r.members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
