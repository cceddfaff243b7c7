package customorder

import (
	"context"
	"strings"
	"time"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
)

type Storer interface {
	createOne(ctx context.Context, order *CustomOrder) error
	updateOne(ctx context.Context, order *CustomOrder) error
	findAll(ctx context.Context) ([]*CustomOrder, error)
	findByID(ctx context.Context, orderID uuid.UUID) (*CustomOrder, error)
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

// createOrder takes a bespoke request, derives its quote bracket from the
// material and persists it as pending. The response carries the bracket so
// the customer sees the estimate immediately.
func (s *service) createOrder(ctx context.Context, newOrder *CreateCustomOrderRequest) (*CustomOrder, error) {
	material := ParseMaterial(newOrder.Material)

	order := &CustomOrder{
		OrderID:           uuid.New(),
		UserID:            newOrder.UserID,
		Name:              strings.TrimSpace(newOrder.Name),
		DesignDescription: strings.TrimSpace(newOrder.DesignDescription),
		Images:            newOrder.Images,
		Message:           strings.TrimSpace(newOrder.Message),
		Material:          material,
		PriceRange:        material.EstimateRange(),
		Status:            StatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.store.createOne(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *service) getAllOrders(ctx context.Context) ([]*CustomOrder, error) {
	return s.store.findAll(ctx)
}

func (s *service) updateOrder(ctx context.Context, update *UpdateCustomOrderRequest) (*CustomOrder, error) {
	orderID, err := uuid.Parse(update.OrderID)
	if err != nil {
		return nil, servererrors.ErrCustomOrderNotFound
	}

	order, err := s.store.findByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if update.DesignDescription != nil {
		order.DesignDescription = strings.TrimSpace(*update.DesignDescription)
	}
	if update.Message != nil {
		order.Message = strings.TrimSpace(*update.Message)
	}
	if update.Status != nil {
		status, err := ParseStatus(*update.Status)
		if err != nil {
			return nil, err
		}

		order.Status = status
	}

	if err := s.store.updateOne(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
