package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
)

const adminRole = "admin"

type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// AuthService checks the single configured admin credential pair and issues
// HS256-signed bearer tokens with a fixed expiry.
type AuthService struct {
	username string
	password string
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(username, password string, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{username: username, password: password, secret: secret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username || password != s.password {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return token.SignedString(s.secret)
}

// Verify parses and validates a bearer token. ErrForbidden means the token
// itself is valid but does not carry the admin role.
func (s *AuthService) Verify(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if claims.Role != adminRole {
		return nil, ErrForbidden
	}
	return claims, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
