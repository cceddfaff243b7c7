package catalog

import (
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/features/review"
	"github.com/google/uuid"
)

// DefaultPageSize matches the storefront's six-card product grid.
const DefaultPageSize = 6

// Requests

// ListingQuery is the parsed form of one catalog browse request. Category and
// Price carry their raw tokens ("" or a sentinel means unconstrained);
// Sort/Page/PageSize are already defaulted at the boundary.
type ListingQuery struct {
	Category string
	Price    string
	Search   string
	Sort     SortKey
	Page     int
	PageSize int
}

type CreateProductRequest struct {
	AdminID         uuid.UUID `json:"-"`
	Name            string    `json:"name" validate:"required,min=3,max=100,noAllRepeatingChars"`
	Description     string    `json:"description" validate:"max=1000"`
	Price           float64   `json:"price" validate:"required,gt=0"`
	DiscountedPrice *float64  `json:"discountedPrice" validate:"omitempty,gt=0"`
	DiscountApplied bool      `json:"discountApplied"`
	CategoryID      string    `json:"categoryID" validate:"omitempty,uuid"`
	Stock           uint      `json:"stock"`
	IsCustom        bool      `json:"isCustom"`
	Images          []string  `json:"images" validate:"dive,required"`
}

type UpdateProductRequest struct {
	AdminID         uuid.UUID `json:"-"`
	ProductID       string    `json:"-"`
	Name            *string   `json:"name" validate:"omitempty,min=3,max=100,noAllRepeatingChars"`
	Description     *string   `json:"description" validate:"omitempty,max=1000"`
	Price           *float64  `json:"price" validate:"omitempty,gt=0"`
	DiscountedPrice *float64  `json:"discountedPrice" validate:"omitempty,gt=0"`
	DiscountApplied *bool     `json:"discountApplied"`
	CategoryID      *string   `json:"categoryID" validate:"omitempty,uuid"`
	Stock           *uint     `json:"stock"`
	Popularity      *int      `json:"popularity"`
	Images          *[]string `json:"images"`
}

// Responses

// ListedProduct is a product as a listing or detail page shows it: the raw
// fields plus the resolved display price and the category's display name.
type ListedProduct struct {
	*Product
	ResolvedPrice
	CategoryName string `json:"categoryName"`
}

type ListingResult struct {
	Products      []*ListedProduct `json:"products"`
	TotalPages    int              `json:"totalPages"`
	CurrentPage   int              `json:"currentPage"`
	TotalProducts int              `json:"totalProducts"`
}

type ProductDetailResponse struct {
	*ListedProduct
	RatingSummary *review.RatingSummary `json:"ratingSummary"`
}
