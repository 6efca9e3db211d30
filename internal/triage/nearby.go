package triage

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/cityfix_backend/internal/geo"
	"github.com/shenikar/cityfix_backend/internal/models"
)

// GeoIndex ищет жалобы в радиусе от точки
type GeoIndex struct {
	store Store
}

func NewGeoIndex(store Store) *GeoIndex {
	return &GeoIndex{store: store}
}

// FindNearby возвращает жалобы не дальше radiusMeters, отсортированные по расстоянию.
// Ограничивающий прямоугольник отбирает кандидатов в хранилище, точное расстояние считается по haversine.
func (g *GeoIndex) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]models.NearbyComplaint, error) {
	if radiusMeters <= 0 {
		return []models.NearbyComplaint{}, nil
	}
	radiusKm := radiusMeters / 1000

	candidates, err := g.store.FindInBox(ctx, geo.BoundingBox(lat, lng, radiusKm))
	if err != nil {
		return nil, fmt.Errorf("triage: nearby query failed: %w", err)
	}

	result := make([]models.NearbyComplaint, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.Location == nil {
			continue
		}
		d := geo.Haversine(lat, lng, c.Location.Lat, c.Location.Lng)
		if d > radiusKm {
			continue
		}
		result = append(result, models.NearbyComplaint{Complaint: c, DistanceKm: d})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})
	return result, nil
}
