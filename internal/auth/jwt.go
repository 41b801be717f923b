package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AppClaims carries the identity asserted by the external identity provider.
// The provider signs tokens with a shared HS256 secret; this service only
// verifies them and never issues end-user credentials itself.
type AppClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// UserID is the provider-issued opaque identifier for the caller.
func (c *AppClaims) UserID() string {
	return c.Subject
}

// GenerateJWT mints a token the way the identity provider would. Used by
// tests and local development tooling.
func GenerateJWT(userID, email, name, secret string) (string, error) {
	claims := &AppClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "sortex-idp",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func VerifyJWT(tokenString, secret string) (*AppClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AppClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AppClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}
