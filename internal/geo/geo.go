// Package geo содержит расчеты расстояний и ограничивающих прямоугольников на сфере.
package geo

import "math"

const (
	// EarthRadiusKm - средний радиус Земли
	EarthRadiusKm = 6371.0
	// KmPerDegreeLat - длина градуса широты
	KmPerDegreeLat = 111.0
	// minLngFactor не дает прямоугольнику расползтись у полюсов
	minLngFactor = 0.1
)

// Box - прямоугольник в градусах, включающий границы
type Box struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// LngRange - отрезок долгот в пределах [-180, 180]
type LngRange struct {
	Min float64
	Max float64
}

// LngRanges переводит долготы прямоугольника в отрезки внутри [-180, 180].
// Прямоугольник, пересекающий антимеридиан, дает два отрезка.
func (b Box) LngRanges() []LngRange {
	switch {
	case b.MaxLng-b.MinLng >= 360:
		return []LngRange{{Min: -180, Max: 180}}
	case b.MinLng < -180:
		return []LngRange{{Min: b.MinLng + 360, Max: 180}, {Min: -180, Max: b.MaxLng}}
	case b.MaxLng > 180:
		return []LngRange{{Min: b.MinLng, Max: 180}, {Min: -180, Max: b.MaxLng - 360}}
	}
	return []LngRange{{Min: b.MinLng, Max: b.MaxLng}}
}

// Contains проверяет, попадает ли точка в прямоугольник
func (b Box) Contains(lat, lng float64) bool {
	if lat < b.MinLat || lat > b.MaxLat {
		return false
	}
	for _, r := range b.LngRanges() {
		if lng >= r.Min && lng <= r.Max {
			return true
		}
	}
	return false
}

// BoundingBox строит прямоугольник вокруг точки, гарантированно покрывающий круг радиуса radiusKm
func BoundingBox(lat, lng, radiusKm float64) Box {
	dLat := radiusKm / KmPerDegreeLat
	factor := math.Max(math.Cos(toRadians(lat)), minLngFactor)
	dLng := radiusKm / (KmPerDegreeLat * factor)
	return Box{
		MinLat: lat - dLat,
		MaxLat: lat + dLat,
		MinLng: lng - dLng,
		MaxLng: lng + dLng,
	}
}

// Haversine возвращает расстояние по большому кругу в километрах
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lng2 - lng1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
