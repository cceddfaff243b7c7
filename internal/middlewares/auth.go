package middlewares

import (
	"context"
	"net/http"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/handlerutils"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/google/uuid"
)

type contextKey struct{}

var EntityKey contextKey = contextKey{}

// AuthWithContext guards h behind the access token cookie and requires the
// token's entity type to match authEntityType ("user" or "admin"). The entity
// id is placed on the request context for the handler.
func (mw *middleware) AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		accessToken, err := r.Cookie("accessToken")
		if err != nil {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrNoAccessTokenCookie.Error(),
				nil,
			)
		}

		isValid, claims, err := mw.jwtManager.ValidateAccessToken(accessToken.Value)
		if err != nil {
			return err
		}

		if !isValid {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrUnauthorized.Error(),
				nil,
			)
		}

		if claims.EntityType != authEntityType {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrUnauthorizedAccess.Error(),
				nil,
			)
		}

		ctx := context.WithValue(
			r.Context(),
			EntityKey,
			claims.EntityID,
		)

		return h(w, r.WithContext(ctx))
	}
}

func GetEntityIDFromContextKey(ctx context.Context) uuid.UUID {
	entityIDStr, ok := ctx.Value(EntityKey).(string)
	if !ok {
		return uuid.Nil
	}

	entityID, err := uuid.Parse(entityIDStr)
	if err != nil {
		return uuid.Nil
	}

	return entityID
}
