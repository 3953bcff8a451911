package util

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type TokenType = string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// Claims carries the identity of every authenticated request. Subject is
// the normalized email, which is also the document key everywhere.
type Claims struct {
	FullName  string    `json:"full_name,omitempty"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *Claims) Email() string {
	return c.Subject
}

func generateToken(email, fullName, tokenType string, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		FullName:  fullName,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateAccessToken(email, fullName, secret string, expiration time.Duration) (string, error) {
	return generateToken(email, fullName, TokenAccess, secret, expiration)
}

func GenerateRefreshToken(email, secret string, expiration time.Duration) (string, error) {
	return generateToken(email, "", TokenRefresh, secret, expiration)
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token claims")
}

// RevocationKey is the redis key a logged-out token is denylisted under.
func RevocationKey(token string) string {
	return "revoked:" + token
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
