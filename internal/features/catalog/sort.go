package catalog

import (
	"bytes"
	"sort"
)

type SortKey string

const (
	SortLatest     SortKey = "latest"
	SortPopularity SortKey = "popularity"
	SortBestRating SortKey = "best-rating"
)

// ParseSortKey maps a raw sort parameter to a SortKey. Unknown or absent
// values fall back to SortLatest rather than failing the request. The spaced
// "best rating" spelling is what older storefront clients send.
func ParseSortKey(raw string) SortKey {
	switch raw {
	case string(SortPopularity):
		return SortPopularity
	case string(SortBestRating), "best rating":
		return SortBestRating
	default:
		return SortLatest
	}
}

// SortProducts returns products ordered by key, descending. Ties fall through
// a fixed chain (primary key, then creation time, then product id, all
// descending) so the order is total and reproducible regardless of how the
// store happened to return the rows.
func SortProducts(products []*Product, key SortKey) []*Product {
	ordered := make([]*Product, len(products))
	copy(ordered, products)

	sort.SliceStable(ordered, func(i, j int) bool {
		return sortsBefore(ordered[i], ordered[j], key)
	})

	return ordered
}

func sortsBefore(a, b *Product, key SortKey) bool {
	switch key {
	case SortPopularity:
		if a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}
	case SortBestRating:
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
	}

	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}

	return bytes.Compare(a.ProductID[:], b.ProductID[:]) > 0
}
