package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Route is a precomputed point-to-point record between two places.
// The pair is unordered: lookups must check both directions.
type Route struct {
	BaseModel
	FromPlaceID     uuid.UUID `gorm:"type:uuid;index:idx_route_pair"`
	ToPlaceID       uuid.UUID `gorm:"type:uuid;index:idx_route_pair"`
	DistanceKm      float64
	DurationMinutes float64
	Cost            float64
	Modes           pq.StringArray `gorm:"type:text[]"` // BUS, TRAIN, FLIGHT, DRIVE
}
