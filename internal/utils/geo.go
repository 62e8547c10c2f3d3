package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision gives roughly 5m cell resolution, enough to key a
// collector's position without storing raw coordinates twice.
const GeohashPrecision = 9

// EncodeLocation converts coordinates to a geohash string
func EncodeLocation(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, GeohashPrecision)
}

// DecodeGeohash converts a geohash string back to coordinates
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// HaversineKm calculates the great-circle distance between two points in
// kilometers
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371.0

	rLat1 := lat1 * math.Pi / 180.0
	rLon1 := lon1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	rLon2 := lon2 * math.Pi / 180.0

	dLat := rLat2 - rLat1
	dLon := rLon2 - rLon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// Round2 rounds to two decimal places, the precision used for all derived
// weight and distance metrics
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
