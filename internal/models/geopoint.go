package models

import "time"

// GeoPoint caches a resolved address. The address string is the unique key;
// entries are never invalidated automatically.
type GeoPoint struct {
	Address   string    `json:"address" db:"address"`
	Lon       float64   `json:"lon" db:"lon"`
	Lat       float64   `json:"lat" db:"lat"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
