package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

type fakeEmbeddingRepo struct {
	results []db_models.PlaceEmbedding
	err     error
}

func (f *fakeEmbeddingRepo) SearchByVector(vector pgvector.Vector, limit int) ([]db_models.PlaceEmbedding, error) {
	return f.results, f.err
}

func (f *fakeEmbeddingRepo) CreateEmbedding(embedding db_models.PlaceEmbedding) error {
	return nil
}

type fakeEmbeddingClient struct {
	err error
}

func (f *fakeEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	return pgvector.NewVector([]float32{0.1, 0.2}), nil
}

func TestSearchByTextVectorPath(t *testing.T) {
	places := rajasthanFixtures()
	embeddingRepo := &fakeEmbeddingRepo{results: []db_models.PlaceEmbedding{
		{PlaceID: places[0].ID},
	}}
	svc := NewSearchService(&fakePlaceRepo{places: places}, embeddingRepo, &fakeEmbeddingClient{})

	results, err := svc.SearchByText(context.Background(), "forts near jaipur", 5)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestSearchByTextFallsBackWhenEmbeddingFails(t *testing.T) {
	places := rajasthanFixtures()
	svc := NewSearchService(
		&fakePlaceRepo{places: places},
		&fakeEmbeddingRepo{},
		&fakeEmbeddingClient{err: errors.New("quota exceeded")},
	)

	results, err := svc.SearchByText(context.Background(), "forts", 5)
	require.NoError(t, err)
	assert.Len(t, results, len(places))
}

func TestSearchByTextWithoutEmbeddingClient(t *testing.T) {
	places := rajasthanFixtures()
	svc := NewSearchService(&fakePlaceRepo{places: places}, &fakeEmbeddingRepo{}, nil)

	results, err := svc.SearchByText(context.Background(), "lake", 5)
	require.NoError(t, err)
	assert.Len(t, results, len(places))
}

func TestSearchByTextRejectsEmptyQuery(t *testing.T) {
	svc := NewSearchService(&fakePlaceRepo{}, &fakeEmbeddingRepo{}, nil)

	_, err := svc.SearchByText(context.Background(), "", 5)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSearchByTextNoVectorMatches(t *testing.T) {
	svc := NewSearchService(&fakePlaceRepo{places: rajasthanFixtures()}, &fakeEmbeddingRepo{}, &fakeEmbeddingClient{})

	results, err := svc.SearchByText(context.Background(), "underwater caves", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}
