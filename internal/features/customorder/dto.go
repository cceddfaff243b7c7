package customorder

import "github.com/google/uuid"

// Requests

type CreateCustomOrderRequest struct {
	UserID            uuid.UUID `json:"-"`
	Name              string    `json:"name" validate:"required,min=2,max=100,noAllRepeatingChars"`
	DesignDescription string    `json:"designDescription" validate:"required,min=10,max=1000"`
	Images            []string  `json:"images" validate:"dive,required"`
	Message           string    `json:"message" validate:"max=500"`
	Material          string    `json:"material"`
}

type UpdateCustomOrderRequest struct {
	OrderID           string  `json:"-"`
	DesignDescription *string `json:"designDescription" validate:"omitempty,min=10,max=1000"`
	Message           *string `json:"message" validate:"omitempty,max=500"`
	Status            *string `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}
