package servererrors

import "errors"

var (
	ErrInvalidRequestPayload = errors.New("invalid request payload")
	ErrValidationFailed      = errors.New("validation failed")
	ErrURLQueryParams        = errors.New("invalid url query params")

	ErrUnauthorized        = errors.New("unauthorized")
	ErrNoAccessTokenCookie = errors.New("no access token cookie")
	ErrUnauthorizedAccess  = errors.New("unauthorized access")

	ErrProductAlreadyExists  = errors.New("product already exists")
	ErrProductNotFound       = errors.New("product not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrReviewNotFound        = errors.New("review not found")
	ErrNotReviewAuthor       = errors.New("review belongs to another user")
	ErrCustomOrderNotFound   = errors.New("custom order not found")

	// ErrMalformedPriceRange reports an unparsable or inverted min-max price
	// filter token. It is a client error, never silently swallowed.
	ErrMalformedPriceRange = errors.New("malformed price range")

	// ErrInvalidPriceState reports a discount whose reduced price is missing
	// or exceeds the base price. Never auto-corrected; silently changing a
	// price is a business risk.
	ErrInvalidPriceState = errors.New("invalid discount price state")

	ErrInvalidOrderStatus = errors.New("invalid custom order status")
)
