package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

type ItineraryRepository interface {
	Save(ctx context.Context, itinerary *db_models.SavedItinerary) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.SavedItinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Save(ctx context.Context, itinerary *db_models.SavedItinerary) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return uuid.Nil, err
	}
	return itinerary.ID, nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*db_models.SavedItinerary, error) {
	var itinerary db_models.SavedItinerary
	err := r.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}
