package review

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/handlerutils"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/middlewares"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/validate"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type servicer interface {
	createReview(ctx context.Context, newReview *CreateReviewRequest) (*Review, error)
	getAllReviews(ctx context.Context) ([]*Review, error)
	getProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviewsResponse, error)
	updateReview(ctx context.Context, update *UpdateReviewRequest) (*Review, error)
	deleteReview(ctx context.Context, reviewID, userID uuid.UUID) error
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(reviewService servicer, middleware middleware) *handler {
	return &handler{
		service:    reviewService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/products/{productID}/reviews",
		handlerutils.MakeHandler(
			h.getProductReviewsHandler,
		),
	)

	// protected routes
	router.Get(
		"/reviews",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.getAllReviewsHandler,
				"admin",
			),
		),
	)

	router.Post(
		"/reviews",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.createReviewHandler,
				"user",
			),
		),
	)

	router.Put(
		"/reviews/{reviewID}",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.updateReviewHandler,
				"user",
			),
		),
	)

	router.Delete(
		"/reviews/{reviewID}",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.deleteReviewHandler,
				"user",
			),
		),
	)
}

func (h *handler) getProductReviewsHandler(w http.ResponseWriter, r *http.Request) error {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		return servererrors.New(
			http.StatusNotFound,
			servererrors.ErrProductNotFound.Error(),
			nil,
		)
	}

	reviews, err := h.service.getProductReviews(r.Context(), productID)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"reviews retrieved",
		reviews,
	)
}

func (h *handler) getAllReviewsHandler(w http.ResponseWriter, r *http.Request) error {
	reviews, err := h.service.getAllReviews(r.Context())
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"reviews retrieved",
		reviews,
	)
}

func (h *handler) createReviewHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateReviewRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	payload.UserID = middlewares.GetEntityIDFromContextKey(ctx)

	if err := validate.StructFields(payload); err != nil {
		return servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrValidationFailed.Error(),
			err,
		)
	}

	review, err := h.service.createReview(ctx, payload)
	if err != nil {
		if errors.Is(err, servererrors.ErrProductNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrProductNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"review created",
		review,
	)
}

func (h *handler) updateReviewHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *UpdateReviewRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	payload.UserID = middlewares.GetEntityIDFromContextKey(ctx)
	payload.ReviewID = chi.URLParam(r, "reviewID")

	if err := validate.StructFields(payload); err != nil {
		return servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrValidationFailed.Error(),
			err,
		)
	}

	review, err := h.service.updateReview(ctx, payload)
	if err != nil {
		return mapReviewError(err)
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"review updated",
		review,
	)
}

func (h *handler) deleteReviewHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	reviewID, err := uuid.Parse(chi.URLParam(r, "reviewID"))
	if err != nil {
		return servererrors.New(
			http.StatusNotFound,
			servererrors.ErrReviewNotFound.Error(),
			nil,
		)
	}

	userID := middlewares.GetEntityIDFromContextKey(ctx)

	if err := h.service.deleteReview(ctx, reviewID, userID); err != nil {
		return mapReviewError(err)
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"review deleted",
		nil,
	)
}

func mapReviewError(err error) error {
	switch {
	case errors.Is(err, servererrors.ErrReviewNotFound):
		return servererrors.New(
			http.StatusNotFound,
			servererrors.ErrReviewNotFound.Error(),
			nil,
		)

	case errors.Is(err, servererrors.ErrNotReviewAuthor):
		return servererrors.New(
			http.StatusForbidden,
			servererrors.ErrNotReviewAuthor.Error(),
			nil,
		)

	default:
		return err
	}
}
