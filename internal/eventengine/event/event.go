// Package event holds the names and payload types exchanged over the
// in-process event engine. Feature packages own their event definitions
// (catalog.go, review.go); this file defines the shared shapes.
package event

// EventName identifies an event registered on the engine.
type EventName string

// SubscriberName labels a subscriber in engine diagnostics.
type SubscriberName string

// Event pairs a registered name with the payload delivered to every
// subscriber of that name.
type Event struct {
	Name    EventName
	Payload any
}

// Subscriber is a named delivery channel. One channel may back subscriptions
// to several events; the engine closes it exactly once on shutdown.
type Subscriber struct {
	Name      SubscriberName
	AddressCh chan<- any
}
