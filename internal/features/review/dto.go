package review

import "github.com/google/uuid"

// Requests

type CreateReviewRequest struct {
	UserID    uuid.UUID `json:"-"`
	ProductID string    `json:"productID" validate:"required,uuid"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"max=1000"`
}

type UpdateReviewRequest struct {
	UserID   uuid.UUID `json:"-"`
	ReviewID string    `json:"-"`
	Rating   *int      `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment  *string   `json:"comment" validate:"omitempty,max=1000"`
}

// Responses

type ProductReviewsResponse struct {
	Reviews []*Review      `json:"reviews"`
	Summary *RatingSummary `json:"summary"`
}
