package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret    string
	jwtExpiresIn time.Duration
)

// Init stores the signing secret and token lifetime used by this package.
func Init(secret string, expiresIn time.Duration) error {
	if secret == "" {
		return fmt.Errorf("token signing secret is not set")
	}

	jwtSecret = secret
	jwtExpiresIn = expiresIn
	return nil
}

// GenerateJWT issues a signed, time-limited token encoding the user id.
func GenerateJWT(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(jwtExpiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyJWT parses and validates a token string.
func VerifyJWT(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	return token, nil
}
