package service

import (
	"time"

	"github.com/domysh/spesometro/database/model"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload embedded in a session token: the subject
// user id, the role granted at issue time and the standard expiry.
type TokenClaims struct {
	UserId int        `json:"userid"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// signToken issues a tamper-evident HS256 session token for the user.
func signToken(secret []byte, user *model.User, expiresAt time.Time) (string, error) {
	claims := &TokenClaims{
		UserId: user.Id,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// parseToken verifies signature and expiry and returns the embedded claims.
func parseToken(secret []byte, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
