package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	products []*Product
	err      error
}

func (f *fakeSource) Snapshot(_ context.Context, _ *FilterSpec) ([]*Product, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.products, nil
}

type fakeNamer struct {
	names map[uuid.UUID]string
}

func (f *fakeNamer) CategoryName(_ context.Context, categoryID uuid.UUID) (string, error) {
	name, ok := f.names[categoryID]
	if !ok {
		return "", servererrors.ErrCategoryNotFound
	}

	return name, nil
}

func engineProduct(name string, price Price, categoryID uuid.UUID, createdOffset time.Duration) *Product {
	p := testProduct(name, price, categoryID)
	p.CreatedAt = sortTestBase.Add(createdOffset)

	return p
}

func Test_QueryEngine_fullPipeline(t *testing.T) {
	mosaics := make([]*Product, 0, 7)
	for i := 0; i < 7; i++ {
		mosaics = append(
			mosaics,
			engineProduct("Mosaic Panel", PlainPrice(15), testCategoryID, time.Duration(i)*time.Hour),
		)
	}

	// out-of-bracket and wrong-category noise the filter must drop
	noise := []*Product{
		engineProduct("Mosaic Panel", PlainPrice(95), testCategoryID, 0),
		engineProduct("Mosaic Panel", PlainPrice(15), testOtherCategoryID, 0),
		engineProduct("Charcoal Study", PlainPrice(15), testCategoryID, 0),
	}

	engine := NewQueryEngine(
		&fakeSource{products: append(noise, mosaics...)},
		&fakeNamer{names: map[uuid.UUID]string{testCategoryID: "Mosaics"}},
	)

	result, err := engine.Query(context.Background(), &ListingQuery{
		Category: testCategoryID.String(),
		Price:    "10-20",
		Search:   "mosaic",
		Sort:     SortLatest,
		Page:     2,
		PageSize: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, result.TotalProducts)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 2, result.CurrentPage)
	require.Len(t, result.Products, 1)

	// page 2 holds the oldest of the seven matches
	oldest := result.Products[0]
	assert.Equal(t, mosaics[0].ProductID, oldest.ProductID)
	assert.Equal(t, "Mosaics", oldest.CategoryName)
	assert.Equal(t, 15.0, oldest.DisplayPrice)
}

func Test_QueryEngine_defaultsPageAndPageSize(t *testing.T) {
	products := make([]*Product, 0, DefaultPageSize+1)
	for i := 0; i < DefaultPageSize+1; i++ {
		products = append(
			products,
			engineProduct("Print", PlainPrice(10), testCategoryID, time.Duration(i)*time.Minute),
		)
	}

	engine := NewQueryEngine(
		&fakeSource{products: products},
		&fakeNamer{names: map[uuid.UUID]string{testCategoryID: "Prints"}},
	)

	result, err := engine.Query(context.Background(), &ListingQuery{Page: 0, PageSize: -3})
	require.NoError(t, err)

	assert.Equal(t, 1, result.CurrentPage)
	assert.Len(t, result.Products, DefaultPageSize)
	assert.Equal(t, 2, result.TotalPages)
}

func Test_QueryEngine_danglingCategoryFallsBack(t *testing.T) {
	engine := NewQueryEngine(
		&fakeSource{products: []*Product{
			engineProduct("Orphan", PlainPrice(10), testCategoryID, 0),
			{ProductID: uuid.New(), Name: "Uncategorized Piece", Price: PlainPrice(10)},
		}},
		&fakeNamer{names: map[uuid.UUID]string{}},
	)

	result, err := engine.Query(context.Background(), &ListingQuery{})
	require.NoError(t, err)

	require.Len(t, result.Products, 2)
	for _, item := range result.Products {
		assert.Equal(t, UncategorizedName, item.CategoryName)
	}
}

func Test_QueryEngine_reFiltersOverReturningSource(t *testing.T) {
	// a source ignoring the spec entirely must not leak mismatches
	engine := NewQueryEngine(
		&fakeSource{products: []*Product{
			engineProduct("Mosaic Bird", PlainPrice(15), testCategoryID, 0),
			engineProduct("Mosaic Bird", PlainPrice(500), testCategoryID, 0),
		}},
		&fakeNamer{names: map[uuid.UUID]string{testCategoryID: "Mosaics"}},
	)

	result, err := engine.Query(context.Background(), &ListingQuery{Price: "10-20"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalProducts)
	require.Len(t, result.Products, 1)
	assert.Equal(t, 15.0, result.Products[0].DisplayPrice)
}

func Test_QueryEngine_malformedPriceRejectedBeforeSourceCall(t *testing.T) {
	engine := NewQueryEngine(
		&fakeSource{err: assert.AnError},
		&fakeNamer{},
	)

	_, err := engine.Query(context.Background(), &ListingQuery{Price: "not-a-range"})
	assert.ErrorIs(t, err, servererrors.ErrMalformedPriceRange)
}

func Test_QueryEngine_emptyMatchStillPaginates(t *testing.T) {
	engine := NewQueryEngine(
		&fakeSource{},
		&fakeNamer{},
	)

	result, err := engine.Query(context.Background(), &ListingQuery{Search: "nothing"})
	require.NoError(t, err)

	assert.Empty(t, result.Products)
	assert.Equal(t, 0, result.TotalProducts)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 1, result.CurrentPage)
}
