package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/eventengine"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/eventengine/event"
	"github.com/google/uuid"
)

// subscriberName is the name of this event handler.
const subscriberName event.SubscriberName = "handler_event.catalog"

type servicerEvent interface {
	refreshProductRating(ctx context.Context, productID uuid.UUID) error
	invalidateSnapshot(ctx context.Context)
}

type HandlerEventsConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
	EventEngine   eventengine.SubscribeRegisterPublisher
	Service       servicerEvent
	AddressChSize uint16
}

// handlerEvents keeps the catalog consistent with what the other features
// publish: review events trigger a rating refresh for the product, and any
// product mutation drops the cached listing snapshot.
type handlerEvents struct {
	*HandlerEventsConfig
	addressCh chan any
}

func NewHandlerEvents(cfg *HandlerEventsConfig) *handlerEvents {
	if cfg.AddressChSize == 0 {
		cfg.AddressChSize = 10
	}

	if cfg.DoneCh == nil || cfg.InternalSrvWG == nil || cfg.EventEngine == nil || cfg.Service == nil {
		log.Fatalf(
			"either 'DoneCh', 'EventEngine', 'InternalSrvWG' or 'Service' is nil in '%s'",
			subscriberName,
		)
	}

	he := &handlerEvents{
		HandlerEventsConfig: cfg,
		addressCh:           make(chan any, cfg.AddressChSize),
	}

	he.addSubscriptions()

	he.InternalSrvWG.Add(1)
	go he.listen()

	return he
}

func (h *handlerEvents) listen() {
	defer h.InternalSrvWG.Done()

	log.Printf("%s is listening...\n", subscriberName)

	// a for-select is not used here because the event engine closes the
	// addressCh on shutdown.
	for newEvent := range h.addressCh {
		switch ne := newEvent.(type) {
		case *event.ProductCreatedEvent:
			h.productChangedEventHandler()

		case *event.ProductUpdatedEvent:
			h.productChangedEventHandler()

		case *event.ReviewCreatedEvent:
			h.reviewChangedEventHandler(ne.ProductID)

		case *event.ReviewUpdatedEvent:
			h.reviewChangedEventHandler(ne.ProductID)

		case *event.ReviewDeletedEvent:
			h.reviewChangedEventHandler(ne.ProductID)

		default:
			log.Printf(
				"received unknown event type: %T\n",
				ne,
			)
		}
	}

	log.Printf("shutting down %s\n", subscriberName)
}

func (h *handlerEvents) productChangedEventHandler() {
	ctx, cancel := eventContext()
	defer cancel()

	h.Service.invalidateSnapshot(ctx)
}

func (h *handlerEvents) reviewChangedEventHandler(productID uuid.UUID) {
	ctx, cancel := eventContext()
	defer cancel()

	if err := h.Service.refreshProductRating(ctx, productID); err != nil {
		log.Printf(
			"%s failed to refresh rating for product %s: %v\n",
			subscriberName,
			productID,
			err,
		)
	}
}

// addSubscriptions subscribes this handler's addressCh to every event it
// reacts to. The publishing services register the event names themselves, so
// they must be constructed before this handler.
func (h *handlerEvents) addSubscriptions() {
	subscribeToEventNames := [...]event.EventName{
		event.ProductCreatedEventName,
		event.ProductUpdatedEventName,
		event.ReviewCreatedEventName,
		event.ReviewUpdatedEventName,
		event.ReviewDeletedEventName,
	}

	for _, eventName := range subscribeToEventNames {
		err := h.EventEngine.Subscribe(
			eventName,
			&event.Subscriber{
				Name:      subscriberName,
				AddressCh: h.addressCh,
			},
		)
		if err != nil {
			log.Fatalf(
				"error in Subscriber: '%s' \nerror subscribing to events: %v\n",
				subscriberName,
				err,
			)
		}
	}
}

func eventContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(
		context.Background(),
		(10 * time.Second),
	)
}
