package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
)

// Sentinel filter tokens meaning "no constraint" for their dimension.
const (
	CategoryAll = "all"
	PriceAll    = "price-all"
)

// FilterSpec is the compiled form of a listing query's filter dimensions.
// The product store may use it to narrow its candidate rows, but
// [FilterSpec.Matches] is the authoritative predicate either way.
type FilterSpec struct {
	CategoryID uuid.NullUUID
	PriceMin   *float64
	PriceMax   *float64
	Search     string

	// unknownCategory marks a category token that is not an id. Such a token
	// names no category, so the spec matches nothing.
	unknownCategory bool
}

// CompileFilter turns the raw filter parameters of q into a FilterSpec.
// Sentinel and empty values impose no constraint. A malformed price token is
// the one hard failure: it is reported, never silently dropped.
func CompileFilter(q *ListingQuery) (*FilterSpec, error) {
	spec := &FilterSpec{
		Search: strings.TrimSpace(q.Search),
	}

	if q.Category != "" && q.Category != CategoryAll {
		categoryID, err := uuid.Parse(q.Category)
		if err != nil {
			// the category filter is non-critical: an unparsable token
			// yields an empty listing, not an error
			spec.unknownCategory = true
		} else {
			spec.CategoryID = uuid.NullUUID{UUID: categoryID, Valid: true}
		}
	}

	if q.Price != "" && q.Price != PriceAll && q.Price != CategoryAll {
		min, max, err := parsePriceToken(q.Price)
		if err != nil {
			return nil, err
		}

		spec.PriceMin = &min
		spec.PriceMax = &max
	}

	return spec, nil
}

// parsePriceToken parses a "min-max" token into inclusive bounds. Both bounds
// must be non-negative numbers with min <= max.
func parsePriceToken(token string) (min, max float64, err error) {
	malformed := func() (float64, float64, error) {
		return 0, 0, fmt.Errorf(
			"%w: %q",
			servererrors.ErrMalformedPriceRange,
			token,
		)
	}

	minStr, maxStr, found := strings.Cut(token, "-")
	if !found {
		return malformed()
	}

	min, minErr := strconv.ParseFloat(strings.TrimSpace(minStr), 64)
	max, maxErr := strconv.ParseFloat(strings.TrimSpace(maxStr), 64)
	if minErr != nil || maxErr != nil {
		return malformed()
	}

	if min < 0 || max < 0 || min > max {
		return malformed()
	}

	return min, max, nil
}

// Matches reports whether p satisfies every filter dimension of the spec.
func (s *FilterSpec) Matches(p *Product) bool {
	if s.unknownCategory {
		return false
	}

	if s.CategoryID.Valid {
		if !p.CategoryID.Valid || p.CategoryID.UUID != s.CategoryID.UUID {
			return false
		}
	}

	// brackets are checked against the base price: a discount does not move
	// a product into a cheaper bracket.
	if s.PriceMin != nil && p.Price.Amount() < *s.PriceMin {
		return false
	}
	if s.PriceMax != nil && p.Price.Amount() > *s.PriceMax {
		return false
	}

	if s.Search != "" {
		if !strings.Contains(
			strings.ToLower(p.Name),
			strings.ToLower(s.Search),
		) {
			return false
		}
	}

	return true
}
