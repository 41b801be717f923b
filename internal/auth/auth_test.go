package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	token, err := GenerateJWT("user_2abc", "eco@example.com", "Eco Warrior", "test_secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyJWT(token, "test_secret")
	require.NoError(t, err)
	require.Equal(t, "user_2abc", claims.UserID())
	require.Equal(t, "eco@example.com", claims.Email)
	require.Equal(t, "Eco Warrior", claims.Name)
}

func TestVerifyJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("user_2abc", "eco@example.com", "Eco Warrior", "test_secret")
	require.NoError(t, err)

	_, err = VerifyJWT(token, "other_secret")
	require.Error(t, err)
}

func TestVerifyJWT_Expired(t *testing.T) {
	claims := &AppClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_2abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test_secret"))
	require.NoError(t, err)

	_, err = VerifyJWT(tokenString, "test_secret")
	require.Error(t, err)
}

func TestVerifyJWT_Garbage(t *testing.T) {
	_, err := VerifyJWT("not.a.token", "test_secret")
	require.Error(t, err)
}
