package catalog

import (
	"testing"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCategoryID      = uuid.MustParse("6f1a22fa-9c1e-4f87-9a3a-111111111111")
	testOtherCategoryID = uuid.MustParse("6f1a22fa-9c1e-4f87-9a3a-222222222222")
)

func testProduct(name string, price Price, categoryID uuid.UUID) *Product {
	return &Product{
		ProductID:  uuid.New(),
		Name:       name,
		Price:      price,
		CategoryID: uuid.NullUUID{UUID: categoryID, Valid: true},
	}
}

func Test_CompileFilter_sentinels(t *testing.T) {
	spec, err := CompileFilter(&ListingQuery{
		Category: CategoryAll,
		Price:    PriceAll,
	})
	require.NoError(t, err)

	assert.False(t, spec.CategoryID.Valid)
	assert.Nil(t, spec.PriceMin)
	assert.Nil(t, spec.PriceMax)

	// an unconstrained spec matches anything, even an uncategorized product
	assert.True(t, spec.Matches(&Product{Name: "Untitled", Price: PlainPrice(10)}))
}

func Test_CompileFilter_malformedPriceTokens(t *testing.T) {
	for _, token := range []string{
		"abc",
		"10-",
		"-10",
		"10-abc",
		"20-10",  // inverted
		"-5--1",  // negative bounds
		"10",     // no separator
	} {
		_, err := CompileFilter(&ListingQuery{Price: token})
		assert.ErrorIsf(
			t,
			err,
			servererrors.ErrMalformedPriceRange,
			"token %q",
			token,
		)
	}
}

func Test_FilterSpec_priceBracketUsesBasePrice(t *testing.T) {
	spec, err := CompileFilter(&ListingQuery{Price: "10-20"})
	require.NoError(t, err)

	inBracket := testProduct("Mosaic Bird", PlainPrice(15.00), testCategoryID)
	assert.True(t, spec.Matches(inBracket))

	// discounted down to 15.00 but the 25.00 base price keeps it out
	discounted, err := NewDiscountedPrice(25.00, 15.00)
	require.NoError(t, err)

	outOfBracket := testProduct("Charcoal Horse", discounted, testCategoryID)
	assert.False(t, spec.Matches(outOfBracket))

	// bounds are inclusive
	assert.True(t, spec.Matches(testProduct("Edge Low", PlainPrice(10), testCategoryID)))
	assert.True(t, spec.Matches(testProduct("Edge High", PlainPrice(20), testCategoryID)))
}

func Test_FilterSpec_category(t *testing.T) {
	spec, err := CompileFilter(&ListingQuery{Category: testCategoryID.String()})
	require.NoError(t, err)

	assert.True(t, spec.Matches(testProduct("A", PlainPrice(1), testCategoryID)))
	assert.False(t, spec.Matches(testProduct("B", PlainPrice(1), testOtherCategoryID)))

	// uncategorized products never match an explicit category filter
	assert.False(t, spec.Matches(&Product{Name: "C", Price: PlainPrice(1)}))
}

func Test_FilterSpec_unknownCategoryTokenMatchesNothing(t *testing.T) {
	// a category token that is not an id names no category; the listing comes
	// back empty instead of erroring
	spec, err := CompileFilter(&ListingQuery{Category: "shoes"})
	require.NoError(t, err)

	assert.False(t, spec.Matches(testProduct("A", PlainPrice(1), testCategoryID)))
	assert.False(t, spec.Matches(&Product{Name: "B", Price: PlainPrice(1)}))
}

func Test_FilterSpec_searchMatchesNameOnly(t *testing.T) {
	spec, err := CompileFilter(&ListingQuery{Search: "mosaic"})
	require.NoError(t, err)

	match := testProduct("Grand MOSAIC Mural", PlainPrice(1), testCategoryID)
	assert.True(t, spec.Matches(match), "search is case-insensitive substring")

	noMatch := testProduct("Charcoal Study", PlainPrice(1), testCategoryID)
	noMatch.Description = "a mosaic of ideas"
	assert.False(t, spec.Matches(noMatch), "description is not searched")
}

func Test_FilterSpec_constraintsCombineWithAND(t *testing.T) {
	spec, err := CompileFilter(&ListingQuery{
		Category: testCategoryID.String(),
		Price:    "10-20",
		Search:   "bird",
	})
	require.NoError(t, err)

	assert.True(t, spec.Matches(testProduct("Mosaic Bird", PlainPrice(15), testCategoryID)))
	assert.False(t, spec.Matches(testProduct("Mosaic Bird", PlainPrice(25), testCategoryID)))
	assert.False(t, spec.Matches(testProduct("Mosaic Cat", PlainPrice(15), testCategoryID)))
	assert.False(t, spec.Matches(testProduct("Mosaic Bird", PlainPrice(15), testOtherCategoryID)))
}
