package catalog

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/eventengine"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/eventengine/event"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/features/review"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
)

const (
	productSnapshotKey = "catalog:products"
	productSnapshotTTL = 5 * time.Minute
)

type Storer interface {
	createOne(ctx context.Context, product *Product) error
	updateOne(ctx context.Context, product *Product) error
	findAll(ctx context.Context) ([]*Product, error)
	findMatching(ctx context.Context, spec *FilterSpec) ([]*Product, error)
	findByID(ctx context.Context, productID uuid.UUID) (*Product, error)
	findByName(ctx context.Context, name string) (*Product, error)
	updateRating(ctx context.Context, productID uuid.UUID, rating float64) error
}

// SnapshotCache is what the service needs from redis; exported so the server
// can hand in an untyped nil when the cache is not configured.
type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, v any) error
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type ratingSummarizer interface {
	SummarizeProduct(ctx context.Context, productID uuid.UUID) (*review.RatingSummary, error)
}

type service struct {
	store   Storer
	reviews ratingSummarizer
	cache   SnapshotCache // nil disables caching
	engine  *QueryEngine

	eventEngine eventengine.RegisterPublisher // nil disables events
}

func NewService(
	store Storer,
	reviews ratingSummarizer,
	categories CategoryNamer,
	cache SnapshotCache,
	eventEngine eventengine.RegisterPublisher,
) *service {
	s := &service{
		store:       store,
		reviews:     reviews,
		cache:       cache,
		eventEngine: eventEngine,
	}

	// the service is the engine's snapshot source: cached when redis is
	// wired, compiled store query otherwise.
	s.engine = NewQueryEngine(s, categories)

	if s.eventEngine != nil {
		s.eventEngine.RegisterEvents(
			event.ProductCreatedEventName,
			event.ProductUpdatedEventName,
		)
	}

	return s
}

func (s *service) getListing(ctx context.Context, q *ListingQuery) (*ListingResult, error) {
	return s.engine.Query(ctx, q)
}

func (s *service) getProductDetail(ctx context.Context, productID uuid.UUID) (*ProductDetailResponse, error) {
	product, err := s.store.findByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	item, err := s.engine.present(ctx, product)
	if err != nil {
		return nil, err
	}

	summary, err := s.reviews.SummarizeProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &ProductDetailResponse{
		ListedProduct: item,
		RatingSummary: summary,
	}, nil
}

func (s *service) createProduct(ctx context.Context, newProduct *CreateProductRequest) (*Product, error) {
	newProduct.Name = strings.TrimSpace(newProduct.Name)
	newProduct.Description = strings.TrimSpace(newProduct.Description)

	existing, err := s.store.findByName(ctx, newProduct.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, servererrors.ErrProductAlreadyExists
	}

	price, err := PriceFromParts(
		newProduct.Price,
		newProduct.DiscountedPrice,
		newProduct.DiscountApplied,
	)
	if err != nil {
		return nil, err
	}

	// bespoke pieces carry no category, whatever the payload says
	var categoryID uuid.NullUUID
	if !newProduct.IsCustom && newProduct.CategoryID != "" {
		parsed, err := uuid.Parse(newProduct.CategoryID)
		if err != nil {
			return nil, servererrors.ErrCategoryNotFound
		}

		categoryID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	product := &Product{
		ProductID:   uuid.New(),
		Name:        newProduct.Name,
		Description: newProduct.Description,
		Price:       price,
		CategoryID:  categoryID,
		Stock:       newProduct.Stock,
		IsCustom:    newProduct.IsCustom,
		CreatedAt:   time.Now().UTC(),
		Images:      newProduct.Images,
	}

	if err := s.store.createOne(ctx, product); err != nil {
		return nil, err
	}

	s.publish(&event.Event{
		Name:    event.ProductCreatedEventName,
		Payload: &event.ProductCreatedEvent{ProductID: product.ProductID},
	})

	return product, nil
}

func (s *service) updateProduct(ctx context.Context, update *UpdateProductRequest) (*Product, error) {
	productID, err := uuid.Parse(update.ProductID)
	if err != nil {
		return nil, servererrors.ErrProductNotFound
	}

	product, err := s.store.findByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		product.Description = strings.TrimSpace(*update.Description)
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	if update.Popularity != nil {
		product.Popularity = *update.Popularity
	}
	if update.Images != nil {
		product.Images = *update.Images
	}

	if update.CategoryID != nil {
		product.CategoryID = uuid.NullUUID{}
		if *update.CategoryID != "" {
			parsed, err := uuid.Parse(*update.CategoryID)
			if err != nil {
				return nil, servererrors.ErrCategoryNotFound
			}

			product.CategoryID = uuid.NullUUID{UUID: parsed, Valid: true}
		}
	}

	if update.Price != nil || update.DiscountedPrice != nil || update.DiscountApplied != nil {
		amount := product.Price.Amount()
		if update.Price != nil {
			amount = *update.Price
		}

		reduced := update.DiscountedPrice
		applied := reduced != nil
		if current, ok := product.Price.Reduced(); ok && reduced == nil {
			reduced = &current
			applied = true
		}
		if update.DiscountApplied != nil {
			applied = *update.DiscountApplied
		}

		price, err := PriceFromParts(amount, reduced, applied)
		if err != nil {
			return nil, err
		}

		product.Price = price
	}

	if err := s.store.updateOne(ctx, product); err != nil {
		return nil, err
	}

	s.publish(&event.Event{
		Name:    event.ProductUpdatedEventName,
		Payload: &event.ProductUpdatedEvent{ProductID: product.ProductID},
	})

	return product, nil
}

// refreshProductRating recomputes a product's stored rating score from its
// current reviews. Driven by review events so the best-rating sort key stays
// consistent without recomputing aggregates on every listing.
func (s *service) refreshProductRating(ctx context.Context, productID uuid.UUID) error {
	summary, err := s.reviews.SummarizeProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.store.updateRating(ctx, productID, summary.Mean); err != nil {
		return err
	}

	s.invalidateSnapshot(ctx)

	return nil
}

// Snapshot implements [ProductSource]. With a cache wired it serves the full
// product snapshot cache-aside; without one it pushes the compiled filter
// down to the store. Either way callers re-apply the filter themselves.
func (s *service) Snapshot(ctx context.Context, spec *FilterSpec) ([]*Product, error) {
	if s.cache == nil {
		return s.store.findMatching(ctx, spec)
	}

	var cached []*Product
	if err := s.cache.GetJSON(ctx, productSnapshotKey, &cached); err == nil {
		return cached, nil
	}

	products, err := s.store.findAll(ctx)
	if err != nil {
		return nil, err
	}

	// repopulate off the request path
	go func() {
		ctx, cancel := context.WithTimeout(
			context.Background(),
			(5 * time.Second),
		)
		defer cancel()

		if err := s.cache.SetJSON(ctx, productSnapshotKey, products, productSnapshotTTL); err != nil {
			log.Printf("failed to populate product snapshot cache: %v", err)
		}
	}()

	return products, nil
}

func (s *service) invalidateSnapshot(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, productSnapshotKey); err != nil {
		log.Printf("failed to invalidate product snapshot cache: %v", err)
	}
}

func (s *service) publish(ev *event.Event) {
	if s.eventEngine == nil {
		return
	}

	if err := s.eventEngine.Publish(ev); err != nil {
		log.Printf("failed to publish %v: %v", ev.Name, err)
	}
}
