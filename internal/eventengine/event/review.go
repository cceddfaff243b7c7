package event

import "github.com/google/uuid"

const (
	ReviewCreatedEventName EventName = "review.created"
	ReviewUpdatedEventName EventName = "review.updated"
	ReviewDeletedEventName EventName = "review.deleted"
)

// ReviewChangedPayload is shared by all review events; the catalog only needs
// to know which product's rating to refresh.
type ReviewChangedPayload struct {
	ProductID uuid.UUID
}

type ReviewCreatedEvent struct {
	ReviewChangedPayload
}

func (e *ReviewCreatedEvent) GetEventName() EventName {
	return ReviewCreatedEventName
}

type ReviewUpdatedEvent struct {
	ReviewChangedPayload
}

func (e *ReviewUpdatedEvent) GetEventName() EventName {
	return ReviewUpdatedEventName
}

type ReviewDeletedEvent struct {
	ReviewChangedPayload
}

func (e *ReviewDeletedEvent) GetEventName() EventName {
	return ReviewDeletedEventName
}
