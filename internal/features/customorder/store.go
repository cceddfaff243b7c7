package customorder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const customOrderColumns = `order_id, user_id, name, design_description, images, message, material, price_range_min, price_range_max, status, created_at`

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) createOne(ctx context.Context, order *CustomOrder) error {
	query := `INSERT INTO custom_orders(` + customOrderColumns + `) VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		order.OrderID,
		order.UserID,
		order.Name,
		order.DesignDescription,
		pq.Array(order.Images),
		order.Message,
		string(order.Material),
		order.PriceRange.Min,
		order.PriceRange.Max,
		string(order.Status),
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to insert new custom order in custom order store: %w",
			err,
		)
	}

	return nil
}

func (s *Store) updateOne(ctx context.Context, order *CustomOrder) error {
	query := `UPDATE custom_orders SET design_description = $2, message = $3, status = $4 WHERE order_id = $1`

	result, err := s.db.ExecContext(
		ctx,
		query,
		order.OrderID,
		order.DesignDescription,
		order.Message,
		string(order.Status),
	)
	if err != nil {
		return fmt.Errorf(
			"failed to update custom order in custom order store: %w",
			err,
		)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return servererrors.ErrCustomOrderNotFound
	}

	return nil
}

func (s *Store) findAll(ctx context.Context) ([]*CustomOrder, error) {
	query := `SELECT ` + customOrderColumns + ` FROM custom_orders ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get custom orders from custom order store: %w",
			err,
		)
	}
	defer rows.Close()

	var orders []*CustomOrder
	for rows.Next() {
		order, err := scanRowIntoCustomOrder(rows)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan custom order from custom order store: %w",
				err,
			)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (s *Store) findByID(ctx context.Context, orderID uuid.UUID) (*CustomOrder, error) {
	query := `SELECT ` + customOrderColumns + ` FROM custom_orders WHERE order_id = $1`

	order, err := scanRowIntoCustomOrder(s.db.QueryRowContext(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrCustomOrderNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan custom order from custom order store: %w",
			err,
		)
	}

	return order, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRowIntoCustomOrder(row rowScanner) (*CustomOrder, error) {
	var (
		order    CustomOrder
		images   pq.StringArray
		material string
		status   string
	)

	err := row.Scan(
		&order.OrderID,
		&order.UserID,
		&order.Name,
		&order.DesignDescription,
		&images,
		&order.Message,
		&material,
		&order.PriceRange.Min,
		&order.PriceRange.Max,
		&status,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Images = images
	order.Material = ParseMaterial(material)

	// status rows are written from the enum; an unknown value here means the
	// table was touched out of band, surface it instead of guessing.
	order.Status, err = ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return &order, nil
}
