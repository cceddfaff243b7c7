package catalog

import (
	"context"
	"errors"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
)

// UncategorizedName is rendered when a product has no category or its
// category reference no longer resolves. A dangling reference is tolerated,
// never an error.
const UncategorizedName = "Uncategorized"

// ProductSource supplies the product snapshot a listing query runs over. A
// source may use the spec to narrow what it returns (compiled WHERE clause,
// cached snapshot), and may over-return: the engine re-applies the filter
// authoritatively.
type ProductSource interface {
	Snapshot(ctx context.Context, spec *FilterSpec) ([]*Product, error)
}

type CategoryNamer interface {
	CategoryName(ctx context.Context, categoryID uuid.UUID) (string, error)
}

// QueryEngine answers listing requests: filter, sort, paginate, then resolve
// prices and category names for the page items. It is a pure computation over
// the source's snapshot and performs no mutation.
type QueryEngine struct {
	source     ProductSource
	categories CategoryNamer
}

func NewQueryEngine(source ProductSource, categories CategoryNamer) *QueryEngine {
	return &QueryEngine{
		source:     source,
		categories: categories,
	}
}

func (e *QueryEngine) Query(ctx context.Context, q *ListingQuery) (*ListingResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}

	spec, err := CompileFilter(q)
	if err != nil {
		return nil, err
	}

	candidates, err := e.source.Snapshot(ctx, spec)
	if err != nil {
		return nil, err
	}

	filtered := make([]*Product, 0, len(candidates))
	for _, p := range candidates {
		if spec.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	page := Paginate(
		SortProducts(filtered, q.Sort),
		q.Page,
		q.PageSize,
	)

	items := make([]*ListedProduct, 0, len(page.Items))
	for _, p := range page.Items {
		item, err := e.present(ctx, p)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return &ListingResult{
		Products:      items,
		TotalPages:    page.TotalPages,
		CurrentPage:   page.CurrentPage,
		TotalProducts: len(filtered),
	}, nil
}

// present attaches the resolved price and category display name to a product.
func (e *QueryEngine) present(ctx context.Context, p *Product) (*ListedProduct, error) {
	categoryName := UncategorizedName

	if p.CategoryID.Valid {
		name, err := e.categories.CategoryName(ctx, p.CategoryID.UUID)
		switch {
		case err == nil:
			categoryName = name
		case errors.Is(err, servererrors.ErrCategoryNotFound):
			// dangling reference, keep the fallback
		default:
			return nil, err
		}
	}

	return &ListedProduct{
		Product:       p,
		ResolvedPrice: p.Price.Resolve(),
		CategoryName:  categoryName,
	}, nil
}
