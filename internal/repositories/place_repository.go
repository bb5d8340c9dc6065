package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

type PlaceRepository interface {
	CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error)

	GetByID(ctx context.Context, id string) (*db_models.Place, error)
	ListAll(ctx context.Context) ([]db_models.Place, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Place, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Place, error)
	SearchByNameOrDistrict(ctx context.Context, query string, limit int) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(place).Error; err != nil {
		return uuid.Nil, err
	}
	return place.ID, nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) ListAll(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Place, error) {
	if len(ids) == 0 {
		return []db_models.Place{}, nil
	}
	var places []db_models.Place
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) SearchByNameOrDistrict(ctx context.Context, query string, limit int) ([]db_models.Place, error) {
	var places []db_models.Place
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR district ILIKE ? OR description ILIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
