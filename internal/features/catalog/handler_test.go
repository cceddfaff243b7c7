package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_getListingQuery_defaults(t *testing.T) {
	q := getListingQuery(url.Values{})

	assert.Equal(t, "", q.Category)
	assert.Equal(t, "", q.Price)
	assert.Equal(t, "", q.Search)
	assert.Equal(t, SortLatest, q.Sort)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.PageSize)
}

func Test_getListingQuery(t *testing.T) {
	q := getListingQuery(url.Values{
		"category": {testCategoryID.String()},
		"price":    {"10-20"},
		"search":   {"mosaic"},
		"sort":     {"best rating"},
		"page":     {"3"},
		"limit":    {"12"},
	})

	assert.Equal(t, testCategoryID.String(), q.Category)
	assert.Equal(t, "10-20", q.Price)
	assert.Equal(t, "mosaic", q.Search)
	assert.Equal(t, SortBestRating, q.Sort)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 12, q.PageSize)
}

func Test_getListingQuery_malformedNumbersDegrade(t *testing.T) {
	q := getListingQuery(url.Values{
		"page":  {"two"},
		"limit": {"-6"},
		"sort":  {"unknown"},
	})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.PageSize)
	assert.Equal(t, SortLatest, q.Sort)
}
