package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceMeters_KnownPair(t *testing.T) {
	// Red Square to the Bolshoi Theatre, roughly 700m apart.
	redSquare := Coordinate{Lat: 55.7539, Lon: 37.6208}
	bolshoi := Coordinate{Lat: 55.7601, Lon: 37.6186}

	distance := DistanceMeters(redSquare, bolshoi)

	assert.Greater(t, distance, 600.0)
	assert.Less(t, distance, 800.0)
	assert.InDelta(t, distance, DistanceMeters(bolshoi, redSquare), 1e-6)
}

func TestRadiusFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  RadiusFilter
		wantErr error
	}{
		{name: "valid", filter: RadiusFilter{Center: Coordinate{Lat: 55.75, Lon: 37.62}, Meters: 500}},
		{name: "zero radius", filter: RadiusFilter{Center: Coordinate{}, Meters: 0}, wantErr: ErrInvalidRadius},
		{name: "negative radius", filter: RadiusFilter{Center: Coordinate{}, Meters: -1}, wantErr: ErrInvalidRadius},
		{name: "infinite radius", filter: RadiusFilter{Center: Coordinate{}, Meters: math.Inf(1)}, wantErr: ErrInvalidRadius},
		{name: "latitude out of range", filter: RadiusFilter{Center: Coordinate{Lat: 91}, Meters: 10}, wantErr: ErrInvalidCoordinate},
		{name: "longitude NaN", filter: RadiusFilter{Center: Coordinate{Lon: math.NaN()}, Meters: 10}, wantErr: ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRadiusFilter_ContainsMatchesHaversine(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	filter := RadiusFilter{Center: Coordinate{Lat: 55.75, Lon: 37.62}, Meters: 2500}
	bound := filter.Bound()

	for i := 0; i < 2000; i++ {
		candidate := Coordinate{
			Lat: 55.75 + (rng.Float64()-0.5)*0.1,
			Lon: 37.62 + (rng.Float64()-0.5)*0.1,
		}

		inside := DistanceMeters(filter.Center, candidate) <= filter.Meters
		assert.Equal(t, inside, filter.Contains(candidate), "candidate %+v", candidate)

		if inside {
			assert.True(t, bound.Contains(candidate.Point()), "bound must cover accepted point %+v", candidate)
		}
	}
}

func TestRadiusFilter_BoundNearPoleUsesFullLongitude(t *testing.T) {
	filter := RadiusFilter{Center: Coordinate{Lat: 89.99, Lon: 10}, Meters: 5000}

	bound := filter.Bound()

	assert.Equal(t, -180.0, bound.Min.Lon())
	assert.Equal(t, 180.0, bound.Max.Lon())
	assert.LessOrEqual(t, bound.Max.Lat(), 90.0)
}

func TestRadiusFilter_BoundAcrossAntimeridian(t *testing.T) {
	filter := RadiusFilter{Center: Coordinate{Lat: 0, Lon: 179.999}, Meters: 10000}
	across := Coordinate{Lat: 0, Lon: -179.99}

	require.True(t, filter.Contains(across))
	assert.True(t, filter.Bound().Contains(across.Point()))
}

func TestRectangleFilter_Validate(t *testing.T) {
	assert.NoError(t, RectangleFilter{MinLat: 0, MaxLat: 1, MinLon: 0, MaxLon: 1}.Validate())
	assert.NoError(t, RectangleFilter{MinLat: 1, MaxLat: 1, MinLon: 2, MaxLon: 2}.Validate())

	assert.ErrorIs(t, RectangleFilter{MinLat: 2, MaxLat: 1, MinLon: 0, MaxLon: 1}.Validate(), ErrInvalidRectangle)
	assert.ErrorIs(t, RectangleFilter{MinLat: 0, MaxLat: 1, MinLon: 5, MaxLon: 1}.Validate(), ErrInvalidRectangle)
	assert.ErrorIs(t, RectangleFilter{MinLat: -100, MaxLat: 1, MinLon: 0, MaxLon: 1}.Validate(), ErrInvalidCoordinate)
}

func TestRectangleFilter_ContainsIsInclusive(t *testing.T) {
	filter := RectangleFilter{MinLat: 10, MaxLat: 20, MinLon: 30, MaxLon: 40}

	assert.True(t, filter.Contains(Coordinate{Lat: 10, Lon: 30}))
	assert.True(t, filter.Contains(Coordinate{Lat: 20, Lon: 40}))
	assert.True(t, filter.Contains(Coordinate{Lat: 15, Lon: 35}))
	assert.False(t, filter.Contains(Coordinate{Lat: 9.9999, Lon: 35}))
	assert.False(t, filter.Contains(Coordinate{Lat: 15, Lon: 40.0001}))

	bound := filter.Bound()
	assert.Equal(t, 30.0, bound.Min.Lon())
	assert.Equal(t, 20.0, bound.Max.Lat())
}

func TestGeoFilter_KeyIsStable(t *testing.T) {
	radius := RadiusFilter{Center: Coordinate{Lat: 1.5, Lon: 2.5}, Meters: 100}
	rect := RectangleFilter{MinLat: 1, MaxLat: 2, MinLon: 3, MaxLon: 4}

	assert.Equal(t, "radius:1.5,2.5,100", radius.Key())
	assert.Equal(t, "rect:1,2,3,4", rect.Key())
}
