package triage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/cityfix_backend/internal/geo"
	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/shenikar/cityfix_backend/internal/triage/mocks"
)

func complaintAt(id string, lat, lng float64) *models.Complaint {
	return &models.Complaint{
		ID:       id,
		Location: &models.Location{Lat: lat, Lng: lng},
	}
}

func TestFindNearby_FiltersByExactDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	// Угол прямоугольника попадает в выборку, но дальше радиуса
	corner := geo.BoundingBox(12.9716, 77.5946, 0.1)
	far := complaintAt("corner", corner.MaxLat, corner.MaxLng)
	near := complaintAt("near", 12.9717, 77.5947)
	center := complaintAt("center", 12.9716, 77.5946)
	noLocation := &models.Complaint{ID: "no-location"}

	store.EXPECT().
		FindInBox(ctx, geo.BoundingBox(12.9716, 77.5946, 0.1)).
		Return([]*models.Complaint{far, near, noLocation, center}, nil).
		Times(1)

	got, err := NewGeoIndex(store).FindNearby(ctx, 12.9716, 77.5946, 100)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "center", got[0].Complaint.ID)
	assert.Equal(t, "near", got[1].Complaint.ID)
	assert.InDelta(t, 0, got[0].DistanceKm, 1e-9)
	for _, n := range got {
		assert.LessOrEqual(t, n.DistanceKm, 0.1)
	}
}

func TestFindNearby_FarAwayIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	// ~5 км от центра
	store.EXPECT().
		FindInBox(ctx, gomock.Any()).
		Return([]*models.Complaint{complaintAt("far", 13.0166, 77.5946)}, nil)

	got, err := NewGeoIndex(store).FindNearby(ctx, 12.9716, 77.5946, 100)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindNearby_ZeroRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	got, err := NewGeoIndex(store).FindNearby(context.Background(), 1, 1, 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindNearby_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	dbErr := errors.New("connection reset")

	store.EXPECT().FindInBox(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := NewGeoIndex(store).FindNearby(context.Background(), 1, 1, 100)

	assert.ErrorIs(t, err, dbErr)
}
