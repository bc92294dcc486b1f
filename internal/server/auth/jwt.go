// Package auth issues and verifies the signed session tokens carried in the
// session cookie. A token binds a request stream to an authenticated user.
package auth

import (
	"time"

	"github.com/dmitrijs2005/filevault/internal/shared"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the authenticated identity:
// the opaque user ID and the login handle shown on the dashboard.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string
	LoginID string
}

func GenerateToken(userID, loginID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:  userID,
		LoginID: loginID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry and returns the embedded
// user ID and login ID.
func ParseToken(tokenString string, secretKey []byte) (string, string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", "", err
	}

	if !token.Valid {
		return "", "", shared.ErrorInvalidToken
	}

	return claims.UserID, claims.LoginID, nil
}
