package category

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	AdminID     uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required,min=2,max=50,noAllRepeatingChars"`
	Description string    `json:"description" validate:"max=500"`
}
