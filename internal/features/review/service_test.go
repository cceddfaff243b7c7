package review

import (
	"context"
	"testing"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	reviews map[uuid.UUID]*Review
	deleted []uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{reviews: map[uuid.UUID]*Review{}}
}

func (f *fakeStore) createOne(_ context.Context, review *Review) error {
	f.reviews[review.ReviewID] = review
	return nil
}

func (f *fakeStore) updateOne(_ context.Context, review *Review) error {
	if _, ok := f.reviews[review.ReviewID]; !ok {
		return servererrors.ErrReviewNotFound
	}
	f.reviews[review.ReviewID] = review

	return nil
}

func (f *fakeStore) deleteOne(_ context.Context, reviewID uuid.UUID) error {
	delete(f.reviews, reviewID)
	f.deleted = append(f.deleted, reviewID)

	return nil
}

func (f *fakeStore) findByID(_ context.Context, reviewID uuid.UUID) (*Review, error) {
	review, ok := f.reviews[reviewID]
	if !ok {
		return nil, servererrors.ErrReviewNotFound
	}

	copied := *review

	return &copied, nil
}

func (f *fakeStore) findAll(_ context.Context) ([]*Review, error) {
	all := make([]*Review, 0, len(f.reviews))
	for _, r := range f.reviews {
		all = append(all, r)
	}

	return all, nil
}

func (f *fakeStore) findByProduct(_ context.Context, productID uuid.UUID) ([]*Review, error) {
	var matches []*Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			matches = append(matches, r)
		}
	}

	return matches, nil
}

func Test_createReview(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)

	userID := uuid.New()
	productID := uuid.New()

	created, err := svc.createReview(context.Background(), &CreateReviewRequest{
		UserID:    userID,
		ProductID: productID.String(),
		Rating:    5,
		Comment:   "  lovely piece  ",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, productID, created.ProductID)
	assert.Equal(t, "lovely piece", created.Comment)
	assert.Len(t, store.reviews, 1)
}

func Test_updateReview_onlyAuthorMayEdit(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)

	author := uuid.New()
	existing := &Review{
		ReviewID:  uuid.New(),
		ProductID: uuid.New(),
		UserID:    author,
		Rating:    3,
		Comment:   "fine",
	}
	require.NoError(t, store.createOne(context.Background(), existing))

	newRating := 5
	_, err := svc.updateReview(context.Background(), &UpdateReviewRequest{
		UserID:   uuid.New(),
		ReviewID: existing.ReviewID.String(),
		Rating:   &newRating,
	})
	assert.ErrorIs(t, err, servererrors.ErrNotReviewAuthor)
	assert.Equal(t, 3, store.reviews[existing.ReviewID].Rating)

	updated, err := svc.updateReview(context.Background(), &UpdateReviewRequest{
		UserID:   author,
		ReviewID: existing.ReviewID.String(),
		Rating:   &newRating,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "fine", updated.Comment)
}

func Test_deleteReview_onlyAuthorMayDelete(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)

	author := uuid.New()
	existing := &Review{
		ReviewID:  uuid.New(),
		ProductID: uuid.New(),
		UserID:    author,
		Rating:    4,
	}
	require.NoError(t, store.createOne(context.Background(), existing))

	err := svc.deleteReview(context.Background(), existing.ReviewID, uuid.New())
	assert.ErrorIs(t, err, servererrors.ErrNotReviewAuthor)
	assert.Empty(t, store.deleted)

	require.NoError(t, svc.deleteReview(context.Background(), existing.ReviewID, author))
	assert.Equal(t, []uuid.UUID{existing.ReviewID}, store.deleted)
}

func Test_getAllReviews(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.createOne(context.Background(), &Review{
			ReviewID:  uuid.New(),
			ProductID: uuid.New(),
			UserID:    uuid.New(),
			Rating:    4,
		}))
	}

	reviews, err := svc.getAllReviews(context.Background())
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
}

func Test_getProductReviews(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)

	productID := uuid.New()
	for _, rating := range []int{5, 5, 2} {
		require.NoError(t, store.createOne(context.Background(), &Review{
			ReviewID:  uuid.New(),
			ProductID: productID,
			UserID:    uuid.New(),
			Rating:    rating,
		}))
	}

	resp, err := svc.getProductReviews(context.Background(), productID)
	require.NoError(t, err)

	assert.Len(t, resp.Reviews, 3)
	assert.Equal(t, 4.0, resp.Summary.Mean)
	assert.Equal(t, 3, resp.Summary.Count)
}
