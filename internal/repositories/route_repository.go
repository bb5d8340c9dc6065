package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

type RouteRepository interface {
	// FindBetween returns the precomputed route between two places,
	// checking both directions of the unordered pair. nil when absent.
	FindBetween(ctx context.Context, a, b uuid.UUID) (*db_models.Route, error)
	CreateRoute(ctx context.Context, route *db_models.Route) error
}

// pair cache keeps route lookups cheap inside one process; entries
// expire so curated route updates eventually show up.
type routePairKey struct {
	A uuid.UUID
	B uuid.UUID
}

type routeCacheEntry struct {
	Route     *db_models.Route
	ExpiresAt time.Time
}

type routeRepository struct {
	db  *gorm.DB
	ttl time.Duration

	mu    sync.RWMutex
	cache map[routePairKey]routeCacheEntry
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{
		db:    db,
		ttl:   1 * time.Hour,
		cache: make(map[routePairKey]routeCacheEntry),
	}
}

// normalizeKey orders the pair so (a,b) and (b,a) share a cache slot.
func normalizeKey(a, b uuid.UUID) routePairKey {
	if a.String() > b.String() {
		a, b = b, a
	}
	return routePairKey{A: a, B: b}
}

func (r *routeRepository) FindBetween(ctx context.Context, a, b uuid.UUID) (*db_models.Route, error) {
	key := normalizeKey(a, b)

	r.mu.RLock()
	if entry, ok := r.cache[key]; ok && time.Now().Before(entry.ExpiresAt) {
		r.mu.RUnlock()
		return entry.Route, nil
	}
	r.mu.RUnlock()

	var route db_models.Route
	err := r.db.WithContext(ctx).
		Where("(from_place_id = ? AND to_place_id = ?) OR (from_place_id = ? AND to_place_id = ?)", a, b, b, a).
		First(&route).Error

	var found *db_models.Route
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// cache the miss too; most pairs have no curated route
	} else {
		found = &route
	}

	r.mu.Lock()
	r.cache[key] = routeCacheEntry{Route: found, ExpiresAt: time.Now().Add(r.ttl)}
	r.mu.Unlock()

	return found, nil
}

func (r *routeRepository) CreateRoute(ctx context.Context, route *db_models.Route) error {
	if err := r.db.WithContext(ctx).Create(route).Error; err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.cache, normalizeKey(route.FromPlaceID, route.ToPlaceID))
	r.mu.Unlock()
	return nil
}
