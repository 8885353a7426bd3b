package kernel

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound valid latitudes in decimal degrees.
	LatitudeMin float64 = -90
	LatitudeMax float64 = 90
	// LongitudeMin and LongitudeMax bound valid longitudes in decimal degrees.
	LongitudeMin float64 = -180
	LongitudeMax float64 = 180

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoLocationIsNotConstructed is returned when validating a GeoLocation
// that was not created through NewGeoLocation.
var ErrGeoLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"geo location must be created via NewGeoLocation constructor")

// GeoLocation is an immutable point on the Earth's surface expressed as
// latitude and longitude in decimal degrees. It is the coordinate type used
// for delivery addresses and delivery person positions; distances between
// two locations are computed with the haversine formula and returned in
// kilometres.
//
// The zero value is invalid and fails Validate; construct instances with
// NewGeoLocation.
type GeoLocation struct { //nolint:recvcheck //pointer receivers on private setters for construction-time validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoLocation creates a GeoLocation after validating that latitude is in
// [-90, 90] and longitude is in [-180, 180]. Coordinates must be finite.
func NewGeoLocation(latitude, longitude float64) (GeoLocation, error) {
	loc := GeoLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return GeoLocation{}, err
	}

	return loc, nil
}

// Validate checks that the GeoLocation was created through NewGeoLocation.
func (l GeoLocation) Validate() error {
	return l.guard.Validate(ErrGeoLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l GeoLocation) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l GeoLocation) Longitude() float64 {
	return l.longitude
}

// String implements fmt.Stringer.
func (l GeoLocation) String() string {
	return fmt.Sprintf("GeoLocation(%.6f,%.6f)", l.latitude, l.longitude)
}

// IsEqual compares two locations for coordinate equality.
// Both locations must be properly constructed.
func (l GeoLocation) IsEqual(other GeoLocation) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// DistanceTo returns the great-circle distance to other in kilometres using
// the haversine formula. Both locations must be properly constructed.
func (l GeoLocation) DistanceTo(other GeoLocation) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(l.latitude)
	lat2 := degreesToRadians(other.latitude)
	dLat := degreesToRadians(other.latitude - l.latitude)
	dLon := degreesToRadians(other.longitude - l.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

func (l *GeoLocation) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

func (l *GeoLocation) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
