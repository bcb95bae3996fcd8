package utils

import (
	"errors"
	"fmt"
	"time"

	"codebank/models"

	"github.com/dgrijalva/jwt-go"
)

// Identity is the decoded payload of a verified token.
type Identity struct {
	UserID   string
	Username string
}

// TokenManager issues and verifies the signed bearer tokens. It is the only
// place that touches the jwt library, so the algorithm is swappable without
// touching route logic.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: time.Hour}
}

func (tm *TokenManager) Generate(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID.Hex(),
		"username": user.Username,
		"exp":      time.Now().Add(tm.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("token missing user id")
	}

	identity := &Identity{UserID: userID}
	if username, ok := claims["username"].(string); ok {
		identity.Username = username
	}
	return identity, nil
}
