package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mocks/mock_auth.go -package=mocks

// AuthService определяет контракт проверки доступа и работы с профилем
type AuthService interface {
	Authenticate(ctx context.Context, credential string) (*models.Identity, error)
	Authorize(ctx context.Context, credential string) (*models.Identity, *models.User, error)
	RequireAdmin(ctx context.Context, identity *models.Identity) (*models.User, error)
	SyncProfile(ctx context.Context, identity *models.Identity) (*models.User, error)
	GetProfile(ctx context.Context, uid string) (*models.User, error)
	UpdateProfile(ctx context.Context, uid, name string) (*models.User, error)
}

type authService struct {
	verifier TokenVerifier
	users    UserRepository
	logger   *logrus.Logger
}

func NewAuthService(verifier TokenVerifier, users UserRepository, logger *logrus.Logger) AuthService {
	return &authService{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

// Authenticate проверяет токен. Префикс "Bearer " необязателен.
func (s *authService) Authenticate(ctx context.Context, credential string) (*models.Identity, error) {
	token := stripBearer(credential)
	if token == "" {
		return nil, fmt.Errorf("missing credential: %w", models.ErrUnauthenticated)
	}

	identity, err := s.verifier.Verify(ctx, token)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "auth",
			"method":  "Authenticate",
		}).WithError(err).Debug("Token rejected")
		if errors.Is(err, models.ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthenticated, err)
	}
	return identity, nil
}

// Authorize - Authenticate, затем проверка роли администратора.
// Нет профиля - models.ErrNotFound, роль не admin - models.ErrForbidden.
func (s *authService) Authorize(ctx context.Context, credential string) (*models.Identity, *models.User, error) {
	identity, err := s.Authenticate(ctx, credential)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.RequireAdmin(ctx, identity)
	if err != nil {
		return identity, nil, err
	}
	return identity, user, nil
}

func (s *authService) RequireAdmin(ctx context.Context, identity *models.Identity) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "RequireAdmin",
		"uid":     identity.Subject,
	})

	user, err := s.users.GetUser(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Admin check for user without profile")
		} else {
			log.WithError(err).Error("Failed to load profile")
		}
		return nil, fmt.Errorf("service: could not load profile: %w", err)
	}
	if !user.IsAdmin() {
		log.Warn("Non-admin user tried to access admin resource")
		return nil, fmt.Errorf("user %s is not admin: %w", identity.Subject, models.ErrForbidden)
	}
	return user, nil
}

// SyncProfile создает профиль при первом входе. Роль существующего профиля не меняется.
func (s *authService) SyncProfile(ctx context.Context, identity *models.Identity) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "SyncProfile",
		"uid":     identity.Subject,
	})

	user := &models.User{
		UID:   identity.Subject,
		Email: identity.Email,
		Name:  identity.Name,
		Role:  models.RoleUser,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to upsert profile")
		return nil, fmt.Errorf("service: could not sync profile: %w", err)
	}

	// email мог смениться у провайдера
	if identity.Email != "" && identity.Email != user.Email {
		user.Email = identity.Email
		if err := s.users.UpdateUser(ctx, user); err != nil {
			log.WithError(err).Warn("Failed to refresh profile email")
		}
	}

	log.WithField("role", user.Role).Info("Profile synced")
	return user, nil
}

func (s *authService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}
	return user, nil
}

// UpdateProfile меняет имя. Остальные поля профиля клиент не меняет.
func (s *authService) UpdateProfile(ctx context.Context, uid, name string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "UpdateProfile",
		"uid":     uid,
	})

	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent profile")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}

	user.Name = strings.TrimSpace(name)
	if err := s.users.UpdateUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update profile")
		return nil, fmt.Errorf("service: could not update profile: %w", err)
	}

	log.Info("Profile updated")
	return user, nil
}

func stripBearer(credential string) string {
	credential = strings.TrimSpace(credential)
	if len(credential) < 6 || !strings.EqualFold(credential[:6], "bearer") {
		return credential
	}
	rest := credential[6:]
	if rest == "" {
		return ""
	}
	if rest[0] == ' ' || rest[0] == '\t' {
		return strings.TrimSpace(rest)
	}
	return credential
}
