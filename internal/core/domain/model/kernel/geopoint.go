package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// GeoPointMinLat is the minimum valid latitude in degrees.
	GeoPointMinLat = -90.0
	// GeoPointMaxLat is the maximum valid latitude in degrees.
	GeoPointMaxLat = 90.0
	// GeoPointMinLng is the minimum valid longitude in degrees.
	GeoPointMinLng = -180.0
	// GeoPointMaxLng is the maximum valid longitude in degrees.
	GeoPointMaxLng = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
// GeoPoints must be created using the NewGeoPoint constructor to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate pair with an optional map link.
// It is an immutable value object; the coordinates are validated against the
// WGS84 degree ranges at construction. The map URL is carried verbatim for
// clients that render an external map; the core never interprets it.
//
// The zero value of GeoPoint is invalid and will fail validation.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(12.9716, 77.5946, "https://maps.example.com/?q=12.9716,77.5946")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Drop-off: %s", point) // Output: GeoPoint(12.971600,77.594600)
type GeoPoint struct {
	lat    float64
	lng    float64
	mapURL string
	guard  guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified coordinates.
// Latitude must be within [GeoPointMinLat, GeoPointMaxLat] and longitude
// within [GeoPointMinLng, GeoPointMaxLng]. The map URL may be empty.
//
// Returns:
//   - GeoPoint: A valid geo point instance
//   - error: Validation error if either coordinate is out of bounds
func NewGeoPoint(lat float64, lng float64, mapURL string) (GeoPoint, error) {
	if lat < GeoPointMinLat || lat > GeoPointMaxLat {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", lat, GeoPointMinLat, GeoPointMaxLat)
	}
	if lng < GeoPointMinLng || lng > GeoPointMaxLng {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", lng, GeoPointMinLng, GeoPointMaxLng)
	}

	return GeoPoint{
		lat:    lat,
		lng:    lng,
		mapURL: mapURL,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// MapURL returns the external map link, or the empty string when none was provided.
func (p GeoPoint) MapURL() string {
	return p.mapURL
}

// IsEqual compares two geo points by coordinates only; the map URL is
// presentation data and does not participate in equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
