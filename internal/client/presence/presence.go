// Package presence broadcasts login and logout to the parts of the terminal
// client that show who is signed in.
package presence

import (
	"sync"

	"github.com/aussiebroadwan/scholarsync/pkg/scholarsdk"
)

type Event int

const (
	EventLogin Event = iota + 1
	EventLogout
)

func (e Event) String() string {
	switch e {
	case EventLogin:
		return "login"
	case EventLogout:
		return "logout"
	default:
		return "unknown"
	}
}

// Change is delivered to subscribers. User is the zero value on logout.
type Change struct {
	Event Event
	User  scholarsdk.UserProfile
}

// Hub fans a Change out to every subscriber. Subscribers run synchronously
// on the publishing goroutine, in subscription order.
type Hub struct {
	mu      sync.Mutex
	nextID  int
	subs    []subscriber
	current *scholarsdk.UserProfile
}

type subscriber struct {
	id int
	fn func(Change)
}

func New() *Hub {
	return &Hub{}
}

// Subscribe registers fn and returns a func that removes it. Calling the
// returned func more than once is safe.
func (h *Hub) Subscribe(fn func(Change)) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscriber{id: id, fn: fn})

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

// Login records user as signed in and notifies subscribers.
func (h *Hub) Login(user scholarsdk.UserProfile) {
	h.mu.Lock()
	h.current = &user
	h.mu.Unlock()

	h.publish(Change{Event: EventLogin, User: user})
}

// Logout clears the signed in user and notifies subscribers. It does
// nothing when nobody is signed in.
func (h *Hub) Logout() {
	h.mu.Lock()
	was := h.current
	h.current = nil
	h.mu.Unlock()

	if was == nil {
		return
	}
	h.publish(Change{Event: EventLogout})
}

// Current returns the signed in user, if any.
func (h *Hub) Current() (scholarsdk.UserProfile, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return scholarsdk.UserProfile{}, false
	}
	return *h.current, true
}

func (h *Hub) publish(c Change) {
	h.mu.Lock()
	subs := make([]subscriber, len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	for _, s := range subs {
		s.fn(c)
	}
}
