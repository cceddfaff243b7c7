package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sortTestBase = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func sortableProduct(id string, createdOffset time.Duration, popularity int, rating float64) *Product {
	return &Product{
		ProductID:  uuid.MustParse(id),
		Price:      PlainPrice(10),
		CreatedAt:  sortTestBase.Add(createdOffset),
		Popularity: popularity,
		Rating:     rating,
	}
}

func productIDs(products []*Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID.String())
	}

	return ids
}

func Test_ParseSortKey(t *testing.T) {
	assert.Equal(t, SortLatest, ParseSortKey("latest"))
	assert.Equal(t, SortPopularity, ParseSortKey("popularity"))
	assert.Equal(t, SortBestRating, ParseSortKey("best-rating"))
	assert.Equal(t, SortBestRating, ParseSortKey("best rating"))

	// unknown and absent keys default to latest
	assert.Equal(t, SortLatest, ParseSortKey(""))
	assert.Equal(t, SortLatest, ParseSortKey("cheapest"))
}

func Test_SortProducts_latest(t *testing.T) {
	oldest := sortableProduct("00000000-0000-0000-0000-000000000001", 0, 0, 0)
	newest := sortableProduct("00000000-0000-0000-0000-000000000002", 2*time.Hour, 0, 0)
	middle := sortableProduct("00000000-0000-0000-0000-000000000003", time.Hour, 0, 0)

	ordered := SortProducts([]*Product{oldest, newest, middle}, SortLatest)

	assert.Equal(
		t,
		productIDs([]*Product{newest, middle, oldest}),
		productIDs(ordered),
	)
}

func Test_SortProducts_popularityTieBreaks(t *testing.T) {
	// equal popularity: newer first, then larger id first
	a := sortableProduct("00000000-0000-0000-0000-000000000001", time.Hour, 5, 0)
	b := sortableProduct("00000000-0000-0000-0000-000000000002", 0, 5, 0)
	c := sortableProduct("00000000-0000-0000-0000-000000000003", 0, 5, 0)
	top := sortableProduct("00000000-0000-0000-0000-000000000004", 0, 9, 0)

	ordered := SortProducts([]*Product{b, c, a, top}, SortPopularity)

	assert.Equal(
		t,
		productIDs([]*Product{top, a, c, b}),
		productIDs(ordered),
	)
}

func Test_SortProducts_bestRating(t *testing.T) {
	low := sortableProduct("00000000-0000-0000-0000-000000000001", 0, 0, 2.5)
	high := sortableProduct("00000000-0000-0000-0000-000000000002", 0, 0, 4.8)
	alsoHigh := sortableProduct("00000000-0000-0000-0000-000000000003", 0, 0, 4.8)

	ordered := SortProducts([]*Product{low, high, alsoHigh}, SortBestRating)

	// the 4.8 tie falls to the larger id
	assert.Equal(
		t,
		productIDs([]*Product{alsoHigh, high, low}),
		productIDs(ordered),
	)
}

func Test_SortProducts_isReproducible(t *testing.T) {
	// fully equal sort keys still produce one total order, regardless of
	// the order the store returned the rows in
	products := []*Product{
		sortableProduct("00000000-0000-0000-0000-000000000002", 0, 1, 1),
		sortableProduct("00000000-0000-0000-0000-000000000001", 0, 1, 1),
		sortableProduct("00000000-0000-0000-0000-000000000003", 0, 1, 1),
	}
	shuffled := []*Product{products[2], products[0], products[1]}

	for _, key := range []SortKey{SortLatest, SortPopularity, SortBestRating} {
		first := SortProducts(products, key)
		second := SortProducts(shuffled, key)

		require.Equal(t, productIDs(first), productIDs(second), "sort key %s", key)
	}
}

func Test_SortProducts_doesNotMutateInput(t *testing.T) {
	a := sortableProduct("00000000-0000-0000-0000-000000000001", 0, 0, 0)
	b := sortableProduct("00000000-0000-0000-0000-000000000002", time.Hour, 0, 0)

	input := []*Product{a, b}
	SortProducts(input, SortLatest)

	assert.Equal(t, productIDs([]*Product{a, b}), productIDs(input))
}
