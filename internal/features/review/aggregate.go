package review

import "math"

// RatingSummary is the aggregate a product detail page renders. Mean is the
// raw arithmetic mean for numeric display; FilledStars is the mean rounded
// and clamped to [0,5] for the star icons, EmptyStars its complement.
type RatingSummary struct {
	Mean        float64     `json:"mean"`
	Count       int         `json:"count"`
	Stars       map[int]int `json:"stars"`
	FilledStars int         `json:"filledStars"`
	EmptyStars  int         `json:"emptyStars"`
}

// Aggregate computes the rating summary over reviews. With no reviews the
// mean is 0 and every star bucket is 0; there is no divide-by-zero path.
func Aggregate(reviews []*Review) *RatingSummary {
	stars := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	sum := 0
	for _, r := range reviews {
		stars[r.Rating]++
		sum += r.Rating
	}

	mean := 0.0
	if len(reviews) > 0 {
		mean = float64(sum) / float64(len(reviews))
	}

	filled := int(math.Round(mean))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}

	return &RatingSummary{
		Mean:        mean,
		Count:       len(reviews),
		Stars:       stars,
		FilledStars: filled,
		EmptyStars:  5 - filled,
	}
}
