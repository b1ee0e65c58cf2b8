package utils

import (
	"math"

	"github.com/neighborly/neighborly-api/schema"
)

const earthRadiusKM = 6371.0

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKM is the great-circle distance between two points
func DistanceKM(a, b schema.Location) float64 {
	dLat := radians(b.Latitude - a.Latitude)
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
