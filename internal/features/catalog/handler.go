package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/handlerutils"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/middlewares"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/validate"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type servicer interface {
	getListing(ctx context.Context, q *ListingQuery) (*ListingResult, error)
	getProductDetail(ctx context.Context, productID uuid.UUID) (*ProductDetailResponse, error)
	createProduct(ctx context.Context, newProduct *CreateProductRequest) (*Product, error)
	updateProduct(ctx context.Context, update *UpdateProductRequest) (*Product, error)
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(catalogService servicer, middleware middleware) *handler {
	return &handler{
		service:    catalogService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/products",
		handlerutils.MakeHandler(
			h.getListingHandler,
		),
	)

	router.Get(
		"/products/{productID}",
		handlerutils.MakeHandler(
			h.getProductDetailHandler,
		),
	)

	// protected routes
	router.Post(
		"/products",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.createProductHandler,
				"admin",
			),
		),
	)

	router.Put(
		"/products/{productID}",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.updateProductHandler,
				"admin",
			),
		),
	)
}

func (h *handler) getListingHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	listingQuery := getListingQuery(r.URL.Query())

	listing, err := h.service.getListing(ctx, listingQuery)
	if err != nil {
		if errors.Is(err, servererrors.ErrMalformedPriceRange) {
			return servererrors.New(
				http.StatusBadRequest,
				err.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"products retrieved",
		listing,
	)
}

func (h *handler) getProductDetailHandler(w http.ResponseWriter, r *http.Request) error {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		return servererrors.New(
			http.StatusNotFound,
			servererrors.ErrProductNotFound.Error(),
			nil,
		)
	}

	detail, err := h.service.getProductDetail(r.Context(), productID)
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
		http.StatusOK,
		"product found",
		detail,
	)
}

func (h *handler) createProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateProductRequest
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

	product, err := h.service.createProduct(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, servererrors.ErrProductAlreadyExists):
			return servererrors.New(
				http.StatusConflict,
				servererrors.ErrProductAlreadyExists.Error(),
				nil,
			)

		case errors.Is(err, servererrors.ErrInvalidPriceState):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				err.Error(),
				nil,
			)

		case errors.Is(err, servererrors.ErrCategoryNotFound):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				servererrors.ErrCategoryNotFound.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"product created",
		product,
	)
}

func (h *handler) updateProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *UpdateProductRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	payload.AdminID = middlewares.GetEntityIDFromContextKey(ctx)
	payload.ProductID = chi.URLParam(r, "productID")

	if err := validate.StructFields(payload); err != nil {
		return servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrValidationFailed.Error(),
			err,
		)
	}

	product, err := h.service.updateProduct(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, servererrors.ErrProductNotFound):
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrProductNotFound.Error(),
				nil,
			)

		case errors.Is(err, servererrors.ErrInvalidPriceState):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				err.Error(),
				nil,
			)

		case errors.Is(err, servererrors.ErrCategoryNotFound):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				servererrors.ErrCategoryNotFound.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"product updated",
		product,
	)
}

// getListingQuery parses the loose query string into a typed ListingQuery.
// Sort, page and page size degrade to defaults when malformed; the category,
// price and search tokens pass through for the filter compiler, which owns
// the price token's failure mode.
func getListingQuery(queryParams url.Values) *ListingQuery {
	listingQuery := &ListingQuery{
		Category: queryParams.Get("category"),
		Price:    queryParams.Get("price"),
		Search:   queryParams.Get("search"),
		Sort:     ParseSortKey(queryParams.Get("sort")),
		Page:     stringToInt(1, queryParams.Get("page")),
		PageSize: stringToInt(DefaultPageSize, queryParams.Get("limit")),
	}

	if listingQuery.Page < 1 {
		listingQuery.Page = 1
	}
	if listingQuery.PageSize < 1 {
		listingQuery.PageSize = DefaultPageSize
	}

	return listingQuery
}

func stringToInt(defaultValue int, field string) int {
	num, err := strconv.Atoi(field)
	if err != nil {
		return defaultValue
	}

	return num
}
