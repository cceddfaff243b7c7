package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. CategoryID is nullable: bespoke pieces carry no
// category, and a category may be deleted out from under a product, in which
// case listings render it as uncategorized rather than failing.
type Product struct {
	ProductID   uuid.UUID     `json:"product_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       Price         `json:"price"`
	CategoryID  uuid.NullUUID `json:"category_id"`
	Stock       uint          `json:"stock"`
	Popularity  int           `json:"popularity"`
	Rating      float64       `json:"rating"`
	IsCustom    bool          `json:"is_custom"`
	CreatedAt   time.Time     `json:"created_at"`
	Images      []string      `json:"images"`
}
