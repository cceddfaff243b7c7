package customorder

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
	createOrder(ctx context.Context, newOrder *CreateCustomOrderRequest) (*CustomOrder, error)
	getAllOrders(ctx context.Context) ([]*CustomOrder, error)
	updateOrder(ctx context.Context, update *UpdateCustomOrderRequest) (*CustomOrder, error)
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(customOrderService servicer, middleware middleware) *handler {
	return &handler{
		service:    customOrderService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	// protected routes
	router.Post(
		"/custom-orders",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.createOrderHandler,
				"user",
			),
		),
	)

	router.Get(
		"/custom-orders",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.getAllOrdersHandler,
				"admin",
			),
		),
	)

	router.Patch(
		"/custom-orders/{orderID}",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.updateOrderHandler,
				"admin",
			),
		),
	)
}

func (h *handler) createOrderHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateCustomOrderRequest
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

	order, err := h.service.createOrder(ctx, payload)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"custom order created",
		order,
	)
}

func (h *handler) getAllOrdersHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	orders, err := h.service.getAllOrders(ctx)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"custom orders retrieved",
		orders,
	)
}

func (h *handler) updateOrderHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *UpdateCustomOrderRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	payload.OrderID = chi.URLParam(r, "orderID")

	if err := validate.StructFields(payload); err != nil {
		return servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrValidationFailed.Error(),
			err,
		)
	}

	order, err := h.service.updateOrder(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, servererrors.ErrCustomOrderNotFound):
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrCustomOrderNotFound.Error(),
				nil,
			)

		case errors.Is(err, servererrors.ErrInvalidOrderStatus):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				err.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"custom order updated",
		order,
	)
}
