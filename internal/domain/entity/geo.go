package entity

import (
	"fmt"
	"math"

	"orgs/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// boundPadding widens pre-filter bounds so points lying exactly on a radius
// edge are not dropped by floating point rounding before the exact check.
const boundPadding = 1e-9

// Geo filter validation errors.
var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrInvalidRadius     = errors.New("radius must be a positive finite number of meters")
	ErrInvalidRectangle  = errors.New("rectangle minimum exceeds maximum")
)

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Point converts the coordinate to an orb point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// Validate checks the coordinate is finite and within Earth bounds.
func (c Coordinate) Validate() error {
	if !validLatitude(c.Lat) || !validLongitude(c.Lon) {
		return errors.Wrapf(ErrInvalidCoordinate, "lat=%v lon=%v", c.Lat, c.Lon)
	}

	return nil
}

// GeoFilter is a spatial containment predicate over building coordinates.
type GeoFilter interface {
	// Validate reports malformed filters.
	Validate() error
	// Bound returns a box containing every coordinate the filter accepts.
	Bound() orb.Bound
	// Contains is the exact containment test.
	Contains(c Coordinate) bool
	// Key is a stable textual form used for cache keys and logs.
	Key() string
}

// RadiusFilter accepts coordinates whose great-circle distance to Center is at most Meters.
type RadiusFilter struct {
	Center Coordinate
	Meters float64
}

// Validate implements GeoFilter.
func (f RadiusFilter) Validate() error {
	if err := f.Center.Validate(); err != nil {
		return err
	}
	if math.IsNaN(f.Meters) || math.IsInf(f.Meters, 0) || f.Meters <= 0 {
		return errors.Wrapf(ErrInvalidRadius, "r_m=%v", f.Meters)
	}

	return nil
}

// Bound implements GeoFilter.
func (f RadiusFilter) Bound() orb.Bound {
	bound := geo.NewBoundAroundPoint(f.Center.Point(), f.Meters)

	minLat := math.Max(bound.Min.Lat()-boundPadding, -90)
	maxLat := math.Min(bound.Max.Lat()+boundPadding, 90)
	minLon := bound.Min.Lon() - boundPadding
	maxLon := bound.Max.Lon() + boundPadding

	// Circles touching a pole or crossing the antimeridian fall back to the
	// full longitude range; the exact check trims the excess.
	if minLat <= -90 || maxLat >= 90 || minLon > maxLon || minLon < -180 || maxLon > 180 ||
		math.IsNaN(minLon) || math.IsNaN(maxLon) {
		minLon, maxLon = -180, 180
	}

	return orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}
}

// Contains implements GeoFilter.
func (f RadiusFilter) Contains(c Coordinate) bool {
	return DistanceMeters(f.Center, c) <= f.Meters
}

// Key implements GeoFilter.
func (f RadiusFilter) Key() string {
	return fmt.Sprintf("radius:%g,%g,%g", f.Center.Lat, f.Center.Lon, f.Meters)
}

// RectangleFilter accepts coordinates inside the latitude/longitude box, edges included.
type RectangleFilter struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Validate implements GeoFilter.
func (f RectangleFilter) Validate() error {
	if err := (Coordinate{Lat: f.MinLat, Lon: f.MinLon}).Validate(); err != nil {
		return err
	}
	if err := (Coordinate{Lat: f.MaxLat, Lon: f.MaxLon}).Validate(); err != nil {
		return err
	}
	if f.MinLat > f.MaxLat {
		return errors.Wrapf(ErrInvalidRectangle, "min_lat=%v > max_lat=%v", f.MinLat, f.MaxLat)
	}
	if f.MinLon > f.MaxLon {
		return errors.Wrapf(ErrInvalidRectangle, "min_lon=%v > max_lon=%v", f.MinLon, f.MaxLon)
	}

	return nil
}

// Bound implements GeoFilter.
func (f RectangleFilter) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{f.MinLon, f.MinLat},
		Max: orb.Point{f.MaxLon, f.MaxLat},
	}
}

// Contains implements GeoFilter.
func (f RectangleFilter) Contains(c Coordinate) bool {
	return c.Lat >= f.MinLat && c.Lat <= f.MaxLat &&
		c.Lon >= f.MinLon && c.Lon <= f.MaxLon
}

// Key implements GeoFilter.
func (f RectangleFilter) Key() string {
	return fmt.Sprintf("rect:%g,%g,%g,%g", f.MinLat, f.MaxLat, f.MinLon, f.MaxLon)
}

// DistanceMeters returns the haversine great-circle distance between two coordinates.
func DistanceMeters(from, to Coordinate) float64 {
	return geo.DistanceHaversine(from.Point(), to.Point())
}

func validLatitude(lat float64) bool {
	return !math.IsNaN(lat) && !math.IsInf(lat, 0) && lat >= -90 && lat <= 90
}

func validLongitude(lon float64) bool {
	return !math.IsNaN(lon) && !math.IsInf(lon, 0) && lon >= -180 && lon <= 180
}
