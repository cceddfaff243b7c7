package category

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
)

type servicer interface {
	getCategories(ctx context.Context) ([]*Category, error)
	createCategory(ctx context.Context, newCategory *CreateCategoryRequest) (*Category, error)
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(categoryService servicer, middleware middleware) *handler {
	return &handler{
		service:    categoryService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/categories",
		handlerutils.MakeHandler(
			h.getCategoriesHandler,
		),
	)

	// protected routes
	router.Post(
		"/categories",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.createCategoryHandler,
				"admin",
			),
		),
	)
}

func (h *handler) getCategoriesHandler(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.service.getCategories(r.Context())
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"categories retrieved",
		categories,
	)
}

func (h *handler) createCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateCategoryRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	payload.AdminID = middlewares.GetEntityIDFromContextKey(ctx)

	if err := validate.StructFields(payload); err != nil {
		return servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrValidationFailed.Error(),
			err,
		)
	}

	category, err := h.service.createCategory(ctx, payload)
	if err != nil {
		if errors.Is(err, servererrors.ErrCategoryAlreadyExists) {
			return servererrors.New(
				http.StatusConflict,
				servererrors.ErrCategoryAlreadyExists.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"category created",
		category,
	)
}
