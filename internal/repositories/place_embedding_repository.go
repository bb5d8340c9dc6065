package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

type PlaceEmbeddingRepository interface {
	SearchByVector(vector pgvector.Vector, limit int) ([]db_models.PlaceEmbedding, error)
	CreateEmbedding(embedding db_models.PlaceEmbedding) error
}

type placeEmbeddingRepository struct {
	db *gorm.DB
}

func NewPlaceEmbeddingRepository(db *gorm.DB) PlaceEmbeddingRepository {
	return &placeEmbeddingRepository{db: db}
}

func (r *placeEmbeddingRepository) SearchByVector(vector pgvector.Vector, limit int) ([]db_models.PlaceEmbedding, error) {
	if limit <= 0 {
		limit = 15
	}
	var results []db_models.PlaceEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM place_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT $2
    `

	if err := r.db.Raw(query, vecStr, limit).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *placeEmbeddingRepository) CreateEmbedding(embedding db_models.PlaceEmbedding) error {
	return r.db.Create(&embedding).Error
}
