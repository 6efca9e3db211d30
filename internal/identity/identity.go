// Package identity проверяет токены внешнего провайдера аутентификации.
package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/cityfix_backend/internal/models"
)

// Claims - набор полей ID-токена, которые использует сервис
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) identity() (*models.Identity, error) {
	if c.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", models.ErrUnauthenticated)
	}
	return &models.Identity{
		Subject: c.Subject,
		Email:   c.Email,
		Name:    c.Name,
	}, nil
}

// unauthenticated приводит ошибки разбора токена к ErrUnauthenticated, сохраняя причину
func unauthenticated(err error) error {
	if errors.Is(err, models.ErrUnauthenticated) {
		return err
	}
	return fmt.Errorf("%w: %v", models.ErrUnauthenticated, err)
}
