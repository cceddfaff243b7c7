package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const productColumns = `product_id, name, description, price, discounted_price, discount_applied, category_id, stock, popularity, rating, is_custom, created_at, images`

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) createOne(ctx context.Context, product *Product) error {
	query := `INSERT INTO products(` + productColumns + `) VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	reduced, applied := product.Price.Reduced()

	_, err := s.db.ExecContext(
		ctx,
		query,
		product.ProductID,
		product.Name,
		product.Description,
		product.Price.Amount(),
		sql.NullFloat64{Float64: reduced, Valid: applied},
		applied,
		product.CategoryID,
		product.Stock,
		product.Popularity,
		product.Rating,
		product.IsCustom,
		product.CreatedAt,
		pq.Array(product.Images),
	)
	if err != nil {
		return fmt.Errorf(
			"failed to insert new product in catalog store: %w",
			err,
		)
	}

	return nil
}

func (s *Store) updateOne(ctx context.Context, product *Product) error {
	query := `UPDATE products SET name = $2, description = $3, price = $4, discounted_price = $5, discount_applied = $6, category_id = $7, stock = $8, popularity = $9, images = $10 WHERE product_id = $1`

	reduced, applied := product.Price.Reduced()

	result, err := s.db.ExecContext(
		ctx,
		query,
		product.ProductID,
		product.Name,
		product.Description,
		product.Price.Amount(),
		sql.NullFloat64{Float64: reduced, Valid: applied},
		applied,
		product.CategoryID,
		product.Stock,
		product.Popularity,
		pq.Array(product.Images),
	)
	if err != nil {
		return fmt.Errorf(
			"failed to update product in catalog store: %w",
			err,
		)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return servererrors.ErrProductNotFound
	}

	return nil
}

func (s *Store) findAll(ctx context.Context) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	return s.queryProducts(ctx, query)
}

// findMatching narrows the candidate rows with a WHERE clause compiled from
// the filter spec. The search clause matches the product name only; the
// engine's predicate stays authoritative over whatever is returned.
func (s *Store) findMatching(ctx context.Context, spec *FilterSpec) ([]*Product, error) {
	if spec.unknownCategory {
		return nil, nil
	}

	query, queryParams := buildMatchingQuery(spec)

	return s.queryProducts(ctx, query, queryParams...)
}

func (s *Store) findByID(ctx context.Context, productID uuid.UUID) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`

	row := s.db.QueryRowContext(ctx, query, productID)

	product, err := scanRowIntoProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrProductNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan product from catalog store: %w",
			err,
		)
	}

	return product, nil
}

func (s *Store) findByName(ctx context.Context, name string) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1`

	row := s.db.QueryRowContext(ctx, query, name)

	product, err := scanRowIntoProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf(
			"failed to scan product from catalog store: %w",
			err,
		)
	}

	return product, nil
}

func (s *Store) updateRating(ctx context.Context, productID uuid.UUID, rating float64) error {
	query := `UPDATE products SET rating = $2 WHERE product_id = $1`

	_, err := s.db.ExecContext(ctx, query, productID, rating)
	if err != nil {
		return fmt.Errorf(
			"failed to update product rating in catalog store: %w",
			err,
		)
	}

	return nil
}

func (s *Store) queryProducts(ctx context.Context, query string, queryParams ...any) ([]*Product, error) {
	rows, err := s.db.QueryContext(ctx, query, queryParams...)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get products from catalog store: %w",
			err,
		)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		product, err := scanRowIntoProduct(rows)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan product from catalog store: %w",
				err,
			)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRowIntoProduct(row rowScanner) (*Product, error) {
	var (
		product         Product
		amount          float64
		discountedPrice sql.NullFloat64
		discountApplied bool
		images          pq.StringArray
	)

	err := row.Scan(
		&product.ProductID,
		&product.Name,
		&product.Description,
		&amount,
		&discountedPrice,
		&discountApplied,
		&product.CategoryID,
		&product.Stock,
		&product.Popularity,
		&product.Rating,
		&product.IsCustom,
		&product.CreatedAt,
		&images,
	)
	if err != nil {
		return nil, err
	}

	var reduced *float64
	if discountedPrice.Valid {
		reduced = &discountedPrice.Float64
	}

	// a row violating the discount invariant surfaces ErrInvalidPriceState
	// here; it is never patched up on the way out of storage.
	product.Price, err = PriceFromParts(amount, reduced, discountApplied)
	if err != nil {
		return nil, err
	}

	product.Images = images

	return &product, nil
}

func buildMatchingQuery(spec *FilterSpec) (string, []any) {
	whereStr, queryParams := buildWhereClauses(spec)

	query := `SELECT ` + productColumns + ` FROM products` + whereStr

	return query, queryParams
}

// likeEscaper neutralizes pattern metacharacters in search input so the ILIKE
// clause matches the same literal text as [FilterSpec.Matches]. Without it a
// '%', '_' or '\' in the search term would narrow the candidate set below what
// the predicate accepts.
var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

func buildWhereClauses(spec *FilterSpec) (string, []any) {
	whereClauses := []string{}
	queryParams := []any{}

	if spec.Search != "" {
		whereClauses = append(
			whereClauses,
			fmt.Sprintf("name ILIKE $%d", len(queryParams)+1),
		)
		queryParams = append(
			queryParams,
			fmt.Sprintf("%%%s%%", likeEscaper.Replace(spec.Search)),
		)
	}

	if spec.CategoryID.Valid {
		whereClauses = append(
			whereClauses,
			fmt.Sprintf("category_id = $%d", len(queryParams)+1),
		)
		queryParams = append(queryParams, spec.CategoryID.UUID)
	}

	if spec.PriceMin != nil {
		whereClauses = append(
			whereClauses,
			fmt.Sprintf("price >= $%d", len(queryParams)+1),
		)
		queryParams = append(queryParams, *spec.PriceMin)
	}

	if spec.PriceMax != nil {
		whereClauses = append(
			whereClauses,
			fmt.Sprintf("price <= $%d", len(queryParams)+1),
		)
		queryParams = append(queryParams, *spec.PriceMax)
	}

	if len(whereClauses) == 0 {
		return "", queryParams
	}

	return fmt.Sprintf(
		" WHERE %s",
		strings.Join(whereClauses, " AND "),
	), queryParams
}
