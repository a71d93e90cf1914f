// Package observe provides a small synchronous publish/subscribe primitive used
// by coordinators to announce navigation changes to a rendering layer.
package observe

import "sync"

// Publisher fans events out to subscribers. Delivery is synchronous: Publish
// returns only after every subscriber registered at the time of the call has been
// invoked, in subscription order, on the caller's goroutine.
//
// The zero value is ready to use.
type Publisher[E any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription[E]
}

type subscription[E any] struct {
	id uint64
	fn func(E)
}

// Subscribe registers fn and returns a function that removes it. The returned
// cancel func may be called more than once.
func (p *Publisher[E]) Subscribe(fn func(E)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscription[E]{id: id, fn: fn})
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { p.remove(id) })
	}
}

func (p *Publisher[E]) remove(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, s := range p.subs {
		if s.id == id {
			p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers e to all current subscribers. Subscribers may subscribe or
// cancel from inside their callback; a subscriber cancelled mid-publish is
// skipped if it has not been reached yet.
func (p *Publisher[E]) Publish(e E) {
	p.mu.Lock()
	snapshot := make([]subscription[E], len(p.subs))
	copy(snapshot, p.subs)
	p.mu.Unlock()

	for _, s := range snapshot {
		if !p.active(s.id) {
			continue
		}
		s.fn(e)
	}
}

func (p *Publisher[E]) active(id uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of active subscribers.
func (p *Publisher[E]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}
