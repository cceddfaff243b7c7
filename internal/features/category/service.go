package category

import (
	"context"
	"strings"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
)

type Storer interface {
	createOne(ctx context.Context, category *Category) error
	findAll(ctx context.Context) ([]*Category, error)
	findByID(ctx context.Context, categoryID uuid.UUID) (*Category, error)
	findByName(ctx context.Context, name string) (*Category, error)
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

func (s *service) getCategories(ctx context.Context) ([]*Category, error) {
	return s.store.findAll(ctx)
}

func (s *service) createCategory(ctx context.Context, newCategory *CreateCategoryRequest) (*Category, error) {
	newCategory.Name = strings.TrimSpace(newCategory.Name)

	existing, err := s.store.findByName(ctx, newCategory.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, servererrors.ErrCategoryAlreadyExists
	}

	category := &Category{
		CategoryID:  uuid.New(),
		Name:        newCategory.Name,
		Description: strings.TrimSpace(newCategory.Description),
	}

	if err := s.store.createOne(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// CategoryName resolves a category's display name for the catalog. Absence
// comes back as [servererrors.ErrCategoryNotFound], which the catalog treats
// as "Uncategorized" rather than a failure.
func (s *service) CategoryName(ctx context.Context, categoryID uuid.UUID) (string, error) {
	category, err := s.store.findByID(ctx, categoryID)
	if err != nil {
		return "", err
	}

	return category.Name, nil
}
