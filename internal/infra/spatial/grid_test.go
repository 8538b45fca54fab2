package spatial

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func bound(minLat, maxLat, minLng, maxLng float64) orb.Bound {
	return orb.Bound{Min: orb.Point{minLng, minLat}, Max: orb.Point{maxLng, maxLat}}
}

func TestGridIndex_Empty(t *testing.T) {
	idx := NewGridIndex(1)
	idx.Build(nil)

	assert.Equal(t, 0, idx.Size())
	assert.Empty(t, idx.InBound(bound(-90, 90, -180, 180)))
}

func TestGridIndex_InBoundInclusive(t *testing.T) {
	idx := NewGridIndex(1)
	idx.Build([]Point{
		{ID: 3, Lat: 55.75, Lng: 37.61},
		{ID: 1, Lat: 55.76, Lng: 37.62},
		{ID: 2, Lat: 55.00, Lng: 82.93},
	})

	assert.Equal(t, 3, idx.Size())
	assert.Equal(t, []int64{1, 3}, idx.InBound(bound(55.75, 55.76, 37.61, 37.62)))
	assert.Equal(t, []int64{2}, idx.InBound(bound(54, 56, 80, 85)))
	assert.Empty(t, idx.InBound(bound(10, 20, 10, 20)))
	assert.Equal(t, []int64{1, 2, 3}, idx.InBound(bound(-90, 90, -180, 180)))
}

func TestGridIndex_MatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := make([]Point, 0, 500)
	for i := 0; i < 500; i++ {
		points = append(points, Point{
			ID:  int64(i + 1),
			Lat: 55 + rng.Float64(),
			Lng: 37 + rng.Float64(),
		})
	}

	idx := NewGridIndex(2)
	idx.Build(points)

	for i := 0; i < 50; i++ {
		latA, latB := 55+rng.Float64(), 55+rng.Float64()
		lngA, lngB := 37+rng.Float64(), 37+rng.Float64()
		query := bound(min(latA, latB), max(latA, latB), min(lngA, lngB), max(lngA, lngB))

		var want []int64
		for _, point := range points {
			if contains(query, point) {
				want = append(want, point.ID)
			}
		}
		slices.Sort(want)

		assert.Equal(t, want, idx.InBound(query))
	}
}
