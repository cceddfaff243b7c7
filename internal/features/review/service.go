package review

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/eventengine"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/eventengine/event"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
)

type Storer interface {
	createOne(ctx context.Context, review *Review) error
	updateOne(ctx context.Context, review *Review) error
	deleteOne(ctx context.Context, reviewID uuid.UUID) error
	findByID(ctx context.Context, reviewID uuid.UUID) (*Review, error)
	findByProduct(ctx context.Context, productID uuid.UUID) ([]*Review, error)
	findAll(ctx context.Context) ([]*Review, error)
}

type service struct {
	store       Storer
	eventEngine eventengine.RegisterPublisher // nil disables events
}

func NewService(store Storer, eventEngine eventengine.RegisterPublisher) *service {
	s := &service{
		store:       store,
		eventEngine: eventEngine,
	}

	if s.eventEngine != nil {
		s.eventEngine.RegisterEvents(
			event.ReviewCreatedEventName,
			event.ReviewUpdatedEventName,
			event.ReviewDeletedEventName,
		)
	}

	return s
}

func (s *service) createReview(ctx context.Context, newReview *CreateReviewRequest) (*Review, error) {
	productID, err := uuid.Parse(newReview.ProductID)
	if err != nil {
		return nil, servererrors.ErrProductNotFound
	}

	review := &Review{
		ReviewID:  uuid.New(),
		ProductID: productID,
		UserID:    newReview.UserID,
		Rating:    newReview.Rating,
		Comment:   strings.TrimSpace(newReview.Comment),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.createOne(ctx, review); err != nil {
		return nil, err
	}

	s.publish(&event.Event{
		Name: event.ReviewCreatedEventName,
		Payload: &event.ReviewCreatedEvent{
			ReviewChangedPayload: event.ReviewChangedPayload{ProductID: productID},
		},
	})

	return review, nil
}

// getAllReviews lists every review across the catalog for moderation.
func (s *service) getAllReviews(ctx context.Context) ([]*Review, error) {
	return s.store.findAll(ctx)
}

func (s *service) getProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviewsResponse, error) {
	reviews, err := s.store.findByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &ProductReviewsResponse{
		Reviews: reviews,
		Summary: Aggregate(reviews),
	}, nil
}

// SummarizeProduct exposes the rating aggregate to the catalog, which uses
// it for product detail pages and to refresh the stored rating score.
func (s *service) SummarizeProduct(ctx context.Context, productID uuid.UUID) (*RatingSummary, error) {
	reviews, err := s.store.findByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return Aggregate(reviews), nil
}

func (s *service) updateReview(ctx context.Context, update *UpdateReviewRequest) (*Review, error) {
	reviewID, err := uuid.Parse(update.ReviewID)
	if err != nil {
		return nil, servererrors.ErrReviewNotFound
	}

	review, err := s.store.findByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	// only the author may touch their review
	if review.UserID != update.UserID {
		return nil, servererrors.ErrNotReviewAuthor
	}

	if update.Rating != nil {
		review.Rating = *update.Rating
	}
	if update.Comment != nil {
		review.Comment = strings.TrimSpace(*update.Comment)
	}

	if err := s.store.updateOne(ctx, review); err != nil {
		return nil, err
	}

	s.publish(&event.Event{
		Name: event.ReviewUpdatedEventName,
		Payload: &event.ReviewUpdatedEvent{
			ReviewChangedPayload: event.ReviewChangedPayload{ProductID: review.ProductID},
		},
	})

	return review, nil
}

func (s *service) deleteReview(ctx context.Context, reviewID, userID uuid.UUID) error {
	review, err := s.store.findByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != userID {
		return servererrors.ErrNotReviewAuthor
	}

	if err := s.store.deleteOne(ctx, reviewID); err != nil {
		return err
	}

	s.publish(&event.Event{
		Name: event.ReviewDeletedEventName,
		Payload: &event.ReviewDeletedEvent{
			ReviewChangedPayload: event.ReviewChangedPayload{ProductID: review.ProductID},
		},
	})

	return nil
}

func (s *service) publish(ev *event.Event) {
	if s.eventEngine == nil {
		return
	}

	if err := s.eventEngine.Publish(ev); err != nil {
		log.Printf("failed to publish %v: %v", ev.Name, err)
	}
}
