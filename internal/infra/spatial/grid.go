// Package spatial provides an in-memory grid index over building coordinates.
package spatial

import (
	"math"
	"slices"

	"github.com/paulmach/orb"
)

const kmPerDegree = 111.0

// Point is an indexed coordinate identified by its owner ID.
type Point struct {
	ID  int64
	Lat float64
	Lng float64
}

// GridIndex buckets points into fixed-size latitude/longitude cells so range
// queries only visit the cells overlapping the query box.
type GridIndex struct {
	points   []Point
	grid     map[gridKey][]int // maps grid cell to point indices
	cellSize float64           // grid cell size in degrees
	minLat   float64
	maxLat   float64
	minLng   float64
	maxLng   float64
}

type gridKey struct {
	latCell int
	lngCell int
}

// NewGridIndex creates a new grid-based spatial index.
// cellSizeKm determines the grid cell size (smaller = more cells, faster lookup but more memory).
func NewGridIndex(cellSizeKm float64) *GridIndex {
	if cellSizeKm <= 0 {
		cellSizeKm = 1
	}

	return &GridIndex{
		grid:     make(map[gridKey][]int),
		cellSize: cellSizeKm / kmPerDegree,
	}
}

// Build constructs the grid index from points, replacing previous content.
func (g *GridIndex) Build(points []Point) {
	g.points = slices.Clone(points)
	g.grid = make(map[gridKey][]int)

	if len(points) == 0 {
		return
	}

	// Find bounding box
	g.minLat, g.maxLat = points[0].Lat, points[0].Lat
	g.minLng, g.maxLng = points[0].Lng, points[0].Lng

	for _, point := range points {
		g.minLat = math.Min(g.minLat, point.Lat)
		g.maxLat = math.Max(g.maxLat, point.Lat)
		g.minLng = math.Min(g.minLng, point.Lng)
		g.maxLng = math.Max(g.maxLng, point.Lng)
	}

	for idx, point := range g.points {
		key := g.getGridKey(point.Lat, point.Lng)
		g.grid[key] = append(g.grid[key], idx)
	}
}

// InBound returns the IDs of points inside bound, edges included, in ascending order.
// The bound uses orb's lon/lat order.
func (g *GridIndex) InBound(bound orb.Bound) []int64 {
	if len(g.points) == 0 {
		return nil
	}

	minLat := math.Max(bound.Min.Lat(), g.minLat)
	maxLat := math.Min(bound.Max.Lat(), g.maxLat)
	minLng := math.Max(bound.Min.Lon(), g.minLng)
	maxLng := math.Min(bound.Max.Lon(), g.maxLng)
	if minLat > maxLat || minLng > maxLng {
		return nil
	}

	lo := g.getGridKey(minLat, minLng)
	hi := g.getGridKey(maxLat, maxLng)
	cells := (hi.latCell - lo.latCell + 1) * (hi.lngCell - lo.lngCell + 1)

	var ids []int64
	collect := func(idx int) {
		point := g.points[idx]
		if contains(bound, point) {
			ids = append(ids, point.ID)
		}
	}

	// Wide boxes touch more cells than there are points; scan instead.
	if cells > len(g.points) {
		for idx := range g.points {
			collect(idx)
		}
	} else {
		for latCell := lo.latCell; latCell <= hi.latCell; latCell++ {
			for lngCell := lo.lngCell; lngCell <= hi.lngCell; lngCell++ {
				for _, idx := range g.grid[gridKey{latCell: latCell, lngCell: lngCell}] {
					collect(idx)
				}
			}
		}
	}

	slices.Sort(ids)

	return ids
}

// Size returns the number of points in the index
func (g *GridIndex) Size() int {
	return len(g.points)
}

func (g *GridIndex) getGridKey(lat, lng float64) gridKey {
	latCell := int(math.Floor((lat - g.minLat) / g.cellSize))
	lngCell := int(math.Floor((lng - g.minLng) / g.cellSize))

	return gridKey{latCell: latCell, lngCell: lngCell}
}

func contains(bound orb.Bound, point Point) bool {
	return point.Lat >= bound.Min.Lat() && point.Lat <= bound.Max.Lat() &&
		point.Lng >= bound.Min.Lon() && point.Lng <= bound.Max.Lon()
}
