package handlerutils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
)

// APIHandler is a http handler that returns an error so that error handling,
// logging and response writing can be centralized in [MakeHandler].
type APIHandler func(w http.ResponseWriter, r *http.Request) error

// MakeHandler converts an [APIHandler] into a [http.HandlerFunc] with
// centralized error handling. A [*servererrors.ServerError] is written with
// its own status code; anything else becomes an opaque 500.
func MakeHandler(h APIHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			log.Println(err)

			var serverError *servererrors.ServerError
			if errors.As(err, &serverError) {
				WriteErrorJSON(
					w,
					serverError.StatusCode,
					serverError.Error(),
					serverError.Errors,
				)
				return
			}

			WriteErrorJSON(
				w,
				http.StatusInternalServerError,
				"something went wrong",
				nil,
			)
		}
	}
}

type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func ParseJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return servererrors.ErrInvalidRequestPayload
	}

	return json.NewDecoder(r.Body).Decode(v)
}

func WriteSuccessJSON(w http.ResponseWriter, statusCode int, message string, data any) error {
	return writeJSON(
		w,
		statusCode,
		&response{
			Status:  "success",
			Message: message,
			Data:    data,
		},
	)
}

func WriteErrorJSON(w http.ResponseWriter, statusCode int, message string, errs any) error {
	return writeJSON(
		w,
		statusCode,
		&response{
			Status:  "error",
			Message: message,
			Errors:  errs,
		},
	)
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(v)
}
