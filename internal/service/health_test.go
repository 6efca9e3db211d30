package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/shenikar/cityfix_backend/internal/service/mocks"
)

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockObjectStore(ctrl)
	store.EXPECT().Exists(gomock.Any()).Return(false, nil)

	health := NewHealthService(map[string]Pinger{
		"redis":   PingFunc(func(context.Context) error { return nil }),
		"mongodb": PingFunc(func(context.Context) error { return errors.New("no reachable servers") }),
		"storage": StorePinger(store),
	})

	statuses, healthy := health.Check(context.Background())

	assert.False(t, healthy)
	assert.Equal(t, []models.ComponentStatus{
		{Name: "mongodb", Status: "unavailable", Error: "no reachable servers"},
		{Name: "redis", Status: "ok"},
		{Name: "storage", Status: "unavailable", Error: "bucket does not exist"},
	}, statuses)
}

func TestHealthCheck_AllOK(t *testing.T) {
	health := NewHealthService(map[string]Pinger{
		"postgres": PingFunc(func(context.Context) error { return nil }),
	})

	statuses, healthy := health.Check(context.Background())

	assert.True(t, healthy)
	assert.Len(t, statuses, 1)
}
