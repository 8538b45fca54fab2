package entity

// Building is a physical location that hosts zero or more organizations.
type Building struct {
	ID        int64   // Primary key.
	Address   string  // Human-readable street address.
	Latitude  float64 // WGS84 latitude in degrees.
	Longitude float64 // WGS84 longitude in degrees.
}

// Coordinate returns the building position.
func (b *Building) Coordinate() Coordinate {
	return Coordinate{Lat: b.Latitude, Lon: b.Longitude}
}
