package catalog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func paginateProducts(n int) []*Product {
	products := make([]*Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, &Product{
			ProductID: uuid.New(),
			Name:      fmt.Sprintf("product %d", i),
			Price:     PlainPrice(10),
		})
	}

	return products
}

func Test_Paginate_sevenProductsAcrossTwoPages(t *testing.T) {
	products := paginateProducts(7)

	first := Paginate(products, 1, 6)
	assert.Len(t, first.Items, 6)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 1, first.CurrentPage)

	second := Paginate(products, 2, 6)
	assert.Len(t, second.Items, 1)
	assert.Equal(t, 2, second.TotalPages)
	assert.Equal(t, 2, second.CurrentPage)

	// the second page starts where the first left off
	assert.Equal(t, products[6].ProductID, second.Items[0].ProductID)
}

func Test_Paginate_totalPagesNeverBelowOne(t *testing.T) {
	result := Paginate(nil, 1, 6)

	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.TotalPages)
}

func Test_Paginate_pagePastTheEnd(t *testing.T) {
	products := paginateProducts(7)

	result := Paginate(products, 5, 6)

	// out of range is neither an error nor a wraparound
	assert.Empty(t, result.Items)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 5, result.CurrentPage)
}

func Test_Paginate_exactMultiple(t *testing.T) {
	products := paginateProducts(12)

	result := Paginate(products, 2, 6)

	assert.Len(t, result.Items, 6)
	assert.Equal(t, 2, result.TotalPages)
}
