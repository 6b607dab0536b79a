package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest carries the login form payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ErrInvalidCredentials is returned on any failed login; the reason is never
// disclosed to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService gates the admin views. Credentials come from the environment at
// startup (single-admin deployment); there is no user registry.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	adminEmail string
	adminHash  []byte
	jwtSecret  []byte
	tokenTTL   time.Duration
}

// NewAuthService hashes the configured admin password once at startup and
// returns the service that checks logins against it.
func NewAuthService(adminEmail, adminPassword string, jwtSecret []byte) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{
		adminEmail: adminEmail,
		adminHash:  hash,
		jwtSecret:  jwtSecret,
		tokenTTL:   24 * time.Hour,
	}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email != s.adminEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  s.adminEmail,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
