package customorder

import (
	"fmt"
	"time"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
)

// Material is the medium a bespoke piece is made in. The set is closed;
// anything a client sends outside of it parses to MaterialOther so a
// submission never fails on an unknown material.
type Material string

const (
	MaterialMosaic   Material = "mosaic"
	MaterialCharcoal Material = "charcoal"
	MaterialAcrylic  Material = "acrylic"
	MaterialOther    Material = "other"
)

func ParseMaterial(raw string) Material {
	switch Material(raw) {
	case MaterialMosaic, MaterialCharcoal, MaterialAcrylic:
		return Material(raw)
	default:
		return MaterialOther
	}
}

// Status tracks a custom order through intake. Orders start pending and only
// an admin moves them on; they are never deleted here.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return Status(raw), nil
	default:
		return "", fmt.Errorf(
			"%w: %q",
			servererrors.ErrInvalidOrderStatus,
			raw,
		)
	}
}

type CustomOrder struct {
	OrderID           uuid.UUID  `json:"order_id"`
	UserID            uuid.UUID  `json:"user_id"`
	Name              string     `json:"name"`
	DesignDescription string     `json:"design_description"`
	Images            []string   `json:"images"`
	Message           string     `json:"message"`
	Material          Material   `json:"material"`
	PriceRange        PriceRange `json:"price_range"`
	Status            Status     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
}
