package review

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratedReview(rating int) *Review {
	return &Review{
		ReviewID:  uuid.New(),
		ProductID: uuid.New(),
		UserID:    uuid.New(),
		Rating:    rating,
	}
}

func Test_Aggregate_noReviews(t *testing.T) {
	summary := Aggregate(nil)

	assert.Equal(t, 0.0, summary.Mean)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0, summary.FilledStars)
	assert.Equal(t, 5, summary.EmptyStars)

	// every bucket is present even when empty
	require.Len(t, summary.Stars, 5)
	for star := 1; star <= 5; star++ {
		assert.Equal(t, 0, summary.Stars[star])
	}
}

func Test_Aggregate(t *testing.T) {
	summary := Aggregate([]*Review{
		ratedReview(5),
		ratedReview(5),
		ratedReview(2),
	})

	assert.Equal(t, 4.0, summary.Mean)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 4, summary.FilledStars)
	assert.Equal(t, 1, summary.EmptyStars)
	assert.Equal(t, 2, summary.Stars[5])
	assert.Equal(t, 1, summary.Stars[2])
	assert.Equal(t, 0, summary.Stars[3])
}

func Test_Aggregate_roundsHalfUp(t *testing.T) {
	// mean 3.5 fills four stars
	summary := Aggregate([]*Review{
		ratedReview(3),
		ratedReview(4),
	})

	assert.Equal(t, 3.5, summary.Mean)
	assert.Equal(t, 4, summary.FilledStars)
	assert.Equal(t, 1, summary.EmptyStars)
}
