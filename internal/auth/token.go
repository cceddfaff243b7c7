package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims identifies the entity a request is acting as. EntityType is
// either "user" or "admin".
type TokenClaims struct {
	EntityID   string `json:"entityID"`
	EntityType string `json:"entityType"`
	jwt.RegisteredClaims
}

type TokenService struct {
	accessTokenSecret       []byte
	accessTokenExpiryInSecs int
}

func NewTokenService(accessTokenSecret string, accessTokenExpiryInSecs int) *TokenService {
	return &TokenService{
		accessTokenSecret:       []byte(accessTokenSecret),
		accessTokenExpiryInSecs: accessTokenExpiryInSecs,
	}
}

func (ts *TokenService) GenerateAccessToken(entityID uuid.UUID, entityType string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		&TokenClaims{
			EntityID:   entityID.String(),
			EntityType: entityType,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt: jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(
					now.Add(time.Duration(ts.accessTokenExpiryInSecs) * time.Second),
				),
			},
		},
	)

	signed, err := token.SignedString(ts.accessTokenSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

func (ts *TokenService) ValidateAccessToken(tokenStr string) (isValid bool, claims *TokenClaims, err error) {
	claims = &TokenClaims{}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}

			return ts.accessTokenSecret, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenMalformed) || errors.Is(err, jwt.ErrSignatureInvalid) {
			return false, nil, nil
		}

		return false, nil, err
	}

	return token.Valid, claims, nil
}
