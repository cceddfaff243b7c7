package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
)

const reviewColumns = `review_id, product_id, user_id, rating, comment, created_at`

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) createOne(ctx context.Context, review *Review) error {
	query := `INSERT INTO reviews(` + reviewColumns + `) VALUES($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		review.ReviewID,
		review.ProductID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to insert new review in review store: %w",
			err,
		)
	}

	return nil
}

func (s *Store) updateOne(ctx context.Context, review *Review) error {
	query := `UPDATE reviews SET rating = $2, comment = $3 WHERE review_id = $1`

	result, err := s.db.ExecContext(
		ctx,
		query,
		review.ReviewID,
		review.Rating,
		review.Comment,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to update review in review store: %w",
			err,
		)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return servererrors.ErrReviewNotFound
	}

	return nil
}

func (s *Store) deleteOne(ctx context.Context, reviewID uuid.UUID) error {
	query := `DELETE FROM reviews WHERE review_id = $1`

	_, err := s.db.ExecContext(ctx, query, reviewID)
	if err != nil {
		return fmt.Errorf(
			"failed to delete review from review store: %w",
			err,
		)
	}

	return nil
}

func (s *Store) findByID(ctx context.Context, reviewID uuid.UUID) (*Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE review_id = $1`

	var review Review
	err := s.db.QueryRowContext(ctx, query, reviewID).Scan(
		&review.ReviewID,
		&review.ProductID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrReviewNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan review from review store: %w",
			err,
		)
	}

	return &review, nil
}

// findAll returns every review whose product still exists. Reviews orphaned
// by a product removal are excluded instead of surfacing broken references.
func (s *Store) findAll(ctx context.Context) ([]*Review, error) {
	query := `SELECT r.review_id, r.product_id, r.user_id, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN products p ON p.product_id = r.product_id
		ORDER BY r.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get reviews from review store: %w",
			err,
		)
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ReviewID,
			&review.ProductID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan review from review store: %w",
				err,
			)
		}

		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (s *Store) findByProduct(ctx context.Context, productID uuid.UUID) ([]*Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get reviews from review store: %w",
			err,
		)
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ReviewID,
			&review.ProductID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan review from review store: %w",
				err,
			)
		}

		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
