package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// PlaceEmbedding holds a description embedding for semantic search.
type PlaceEmbedding struct {
	BaseModel
	PlaceID   uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}
