package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
)

const categoryColumns = `category_id, name, description`

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) createOne(ctx context.Context, category *Category) error {
	query := `INSERT INTO categories(` + categoryColumns + `) VALUES($1, $2, $3)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		category.CategoryID,
		category.Name,
		category.Description,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to insert new category in category store: %w",
			err,
		)
	}

	return nil
}

func (s *Store) findAll(ctx context.Context) ([]*Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get categories from category store: %w",
			err,
		)
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var category Category
		err := rows.Scan(
			&category.CategoryID,
			&category.Name,
			&category.Description,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan category from category store: %w",
				err,
			)
		}

		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *Store) findByID(ctx context.Context, categoryID uuid.UUID) (*Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1`

	var category Category
	err := s.db.QueryRowContext(ctx, query, categoryID).Scan(
		&category.CategoryID,
		&category.Name,
		&category.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrCategoryNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan category from category store: %w",
			err,
		)
	}

	return &category, nil
}

func (s *Store) findByName(ctx context.Context, name string) (*Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`

	var category Category
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&category.CategoryID,
		&category.Name,
		&category.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf(
			"failed to scan category from category store: %w",
			err,
		)
	}

	return &category, nil
}
