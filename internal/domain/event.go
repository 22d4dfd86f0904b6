package domain

import (
	"sync"
)

// AuthEvent identifies an auth-state transition.
type AuthEvent string

const (
	AuthEventSignedIn  AuthEvent = "SIGNED_IN"
	AuthEventSignedOut AuthEvent = "SIGNED_OUT"

	// AuthEventTokenRefreshed is declared but not emitted by any current
	// operation. Reserved for refresh-token support.
	AuthEventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)

// AuthChangeHandler receives auth-state transitions. The session is nil
// for AuthEventSignedOut.
type AuthChangeHandler func(event AuthEvent, session *Session)

type authSubscriber struct {
	id      uint64
	handler AuthChangeHandler
}

// AuthEventBus broadcasts auth-state transitions to registered handlers.
// Delivery is synchronous and in subscription order, so a caller that
// signs in observes every handler's effect before the sign-in returns.
// Subscriptions are keyed by id, making unsubscribe reliable for
// function values.
type AuthEventBus struct {
	mu          sync.Mutex
	nextID      uint64
	subscribers []authSubscriber
}

// NewAuthEventBus creates an empty bus.
func NewAuthEventBus() *AuthEventBus {
	return &AuthEventBus{}
}

// Subscription is a handle to an active subscription. Unsubscribe is
// idempotent.
type Subscription struct {
	bus *AuthEventBus
	id  uint64
}

// Unsubscribe removes the handler from the bus.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.remove(s.id)
}

// Subscribe registers a handler and returns its subscription handle.
func (b *AuthEventBus) Subscribe(handler AuthChangeHandler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subscribers = append(b.subscribers, authSubscriber{id: b.nextID, handler: handler})
	return &Subscription{bus: b, id: b.nextID}
}

// Publish delivers the event to every subscriber, synchronously, in
// subscription order.
func (b *AuthEventBus) Publish(event AuthEvent, session *Session) {
	b.mu.Lock()
	handlers := make([]AuthChangeHandler, 0, len(b.subscribers))
	for _, sub := range b.subscribers {
		handlers = append(handlers, sub.handler)
	}
	b.mu.Unlock()

	for _, handler := range handlers {
		handler(event, session.Clone())
	}
}

// SubscriberCount returns the number of active subscriptions.
func (b *AuthEventBus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subscribers)
}

func (b *AuthEventBus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub.id == id {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}
