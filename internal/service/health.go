package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shenikar/cityfix_backend/internal/models"
)

//go:generate mockgen -source=health.go -destination=mocks/mock_health.go -package=mocks

const healthCheckTimeout = 3 * time.Second

// PingFunc позволяет использовать функцию как Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// StorePinger проверяет, что бакет хранилища существует
func StorePinger(store ObjectStore) Pinger {
	return PingFunc(func(ctx context.Context) error {
		ok, err := store.Exists(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("bucket does not exist")
		}
		return nil
	})
}

// HealthService опрашивает внешние зависимости
type HealthService interface {
	Check(ctx context.Context) ([]models.ComponentStatus, bool)
}

type healthService struct {
	checks map[string]Pinger
}

func NewHealthService(checks map[string]Pinger) HealthService {
	return &healthService{checks: checks}
}

// Check возвращает статус каждой зависимости и общий итог
func (s *healthService) Check(ctx context.Context) ([]models.ComponentStatus, bool) {
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	healthy := true
	statuses := make([]models.ComponentStatus, 0, len(names))
	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := s.checks[name].Ping(cctx)
		cancel()

		status := models.ComponentStatus{Name: name, Status: "ok"}
		if err != nil {
			healthy = false
			status.Status = "unavailable"
			status.Error = err.Error()
		}
		statuses = append(statuses, status)
	}
	return statuses, healthy
}
