package docstore

import "sync"

// Pool keeps one store per user, created on first use
type Pool[T any] struct {
	mu      sync.Mutex
	stores  map[string]*Store[T]
	factory func(userID string) *Store[T]
}

func NewPool[T any](factory func(userID string) *Store[T]) *Pool[T] {
	return &Pool[T]{stores: map[string]*Store[T]{}, factory: factory}
}

// For returns the user's store
func (p *Pool[T]) For(userID string) *Store[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.stores[userID]
	if !ok {
		s = p.factory(userID)
		p.stores[userID] = s
	}
	return s
}
