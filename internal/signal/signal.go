// Package signal is the one long-range channel of a rendered page: nested
// components emit a named request and the root component, which owns the
// affected state, handles it. Nothing else in the page talks across the tree.
//
// Emission is synchronous and unbuffered. A signal emitted while nobody is
// subscribed is dropped and never replayed to a later subscriber.
package signal

import "sync"

// Name identifies a signal.
type Name string

// OpenProjectsModal asks the page root to show the projects gallery.
const OpenProjectsModal Name = "open-projects-modal"

// Known reports whether n is a signal the page understands.
func Known(n Name) bool {
	return n == OpenProjectsModal
}

type subscription struct {
	handler func()
	active  bool
}

// Channel delivers signals to their subscribers in subscription order.
// The zero value is not usable; call New.
type Channel struct {
	mu   sync.Mutex
	subs map[Name][]*subscription
}

// New returns an empty channel.
func New() *Channel {
	return &Channel{subs: make(map[Name][]*subscription)}
}

// Emit runs every active handler for name. Handlers run outside the channel
// lock, so a handler may subscribe or unsubscribe.
func (c *Channel) Emit(name Name) {
	c.mu.Lock()
	pending := make([]*subscription, len(c.subs[name]))
	copy(pending, c.subs[name])
	c.mu.Unlock()

	for _, s := range pending {
		c.mu.Lock()
		active := s.active
		c.mu.Unlock()
		if active {
			s.handler()
		}
	}
}

// Subscribe registers handler for name and returns the function that removes
// it. The returned function may be called any number of times.
func (c *Channel) Subscribe(name Name, handler func()) (unsubscribe func()) {
	s := &subscription{handler: handler, active: true}

	c.mu.Lock()
	c.subs[name] = append(c.subs[name], s)
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { c.remove(name, s) })
	}
}

func (c *Channel) remove(name Name, s *subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s.active = false
	list := c.subs[name]
	for i, existing := range list {
		if existing == s {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(c.subs, name)
		return
	}
	c.subs[name] = list
}

// Len reports the number of active subscriptions for name.
func (c *Channel) Len(name Name) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs[name])
}
