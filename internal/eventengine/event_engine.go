package eventengine

import (
	"fmt"
	"log"
	"sync"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/eventengine/event"
)

type Publisher interface {
	Publish(event *event.Event) error
}

type Subscriber interface {
	Subscribe(toEventName event.EventName, subscriber *event.Subscriber) error
}

type RegisterPublisher interface {
	Publisher
	RegisterEvents(eventNames ...event.EventName)
}

type SubscribeRegisterPublisher interface {
	Subscriber
	RegisterPublisher
}

type subscribers struct {
	names      []event.SubscriberName
	addressChs []chan<- any
}

type EventEngineConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
}

// eventEngine is the in-process pub/sub hub. Register an event name before
// publishing or subscribing to it; all wiring happens during server startup,
// so the events map needs no locking once listen() is running.
type eventEngine struct {
	*EventEngineConfig

	eventEngineCh chan *event.Event
	events        map[event.EventName]*subscribers
}

func NewEventEngine(cfg *EventEngineConfig) SubscribeRegisterPublisher {
	if cfg == nil || cfg.DoneCh == nil || cfg.InternalSrvWG == nil {
		log.Fatalln("event engine config, DoneCh and InternalSrvWG must not be nil")
	}

	e := &eventEngine{
		EventEngineConfig: cfg,
		events:            make(map[event.EventName]*subscribers, 20),
		eventEngineCh:     make(chan *event.Event, 20),
	}

	e.InternalSrvWG.Add(1)
	go e.listen()

	return e
}

func (e *eventEngine) listen() {
	defer e.InternalSrvWG.Done()

	log.Println("event engine is listening...")

	for {
		select {
		case <-e.DoneCh:
			// drain pending events before closing subscriber channels so no
			// published event is dropped during shutdown.
			close(e.eventEngineCh)
			for ev := range e.eventEngineCh {
				e.broadcast(ev)
			}

			e.closeSubscriberChannels()
			log.Println("event engine has shut down")
			return

		case ev, isOpened := <-e.eventEngineCh:
			if !isOpened {
				return
			}

			e.broadcast(ev)
		}
	}
}

func (e *eventEngine) broadcast(ev *event.Event) {
	subs, exists := e.events[ev.Name]
	if !exists {
		log.Printf("event %v not found. check your event handler", ev.Name)
		return
	}

	for i, addressCh := range subs.addressChs {
		if addressCh == nil {
			log.Printf(
				"subscriber '%v's addressCh is nil. check this event handler's initialization",
				subs.names[i],
			)
			continue
		}

		addressCh <- ev.Payload
	}
}

// RegisterEvents adds the event names a publisher can publish to the engine.
//
// IMPORTANT: Register an event before you try to publish or subscribe to it.
func (e *eventEngine) RegisterEvents(eventNames ...event.EventName) {
	for _, eventName := range eventNames {
		if _, exists := e.events[eventName]; exists {
			log.Printf("event '%v' already registered", eventName)
			continue
		}

		e.events[eventName] = &subscribers{}
	}
}

func (e *eventEngine) Subscribe(toEventName event.EventName, newSubscriber *event.Subscriber) error {
	subs, ok := e.events[toEventName]
	if !ok {
		return fmt.Errorf(
			"event '%v' not found. make sure the publishing service registered it with RegisterEvents before subscribing",
			toEventName,
		)
	}

	subs.names = append(subs.names, newSubscriber.Name)
	subs.addressChs = append(subs.addressChs, newSubscriber.AddressCh)

	return nil
}

func (e *eventEngine) Publish(ev *event.Event) error {
	if _, exists := e.events[ev.Name]; !exists {
		return fmt.Errorf(
			"event '%v' not found. make sure the publishing service registered it with RegisterEvents",
			ev.Name,
		)
	}

	e.eventEngineCh <- ev

	return nil
}

func (e *eventEngine) closeSubscriberChannels() {
	closed := make(map[chan<- any]bool)

	for _, subs := range e.events {
		for _, addressCh := range subs.addressChs {
			// a subscriber may listen to several events with one channel
			if addressCh == nil || closed[addressCh] {
				continue
			}

			close(addressCh)
			closed[addressCh] = true
		}
	}
}
