package event

import "github.com/google/uuid"

const (
	ProductCreatedEventName EventName = "catalog.product.created"
	ProductUpdatedEventName EventName = "catalog.product.updated"
)

type ProductCreatedEvent struct {
	ProductID uuid.UUID
}

func (e *ProductCreatedEvent) GetEventName() EventName {
	return ProductCreatedEventName
}

type ProductUpdatedEvent struct {
	ProductID uuid.UUID
}

func (e *ProductUpdatedEvent) GetEventName() EventName {
	return ProductUpdatedEventName
}
