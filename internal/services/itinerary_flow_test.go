package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/pkg/utils"
)

type fakeItineraryRepo struct {
	saved   *db_models.SavedItinerary
	saveErr error
}

func (f *fakeItineraryRepo) Save(ctx context.Context, itinerary *db_models.SavedItinerary) (uuid.UUID, error) {
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	itinerary.ID = uuid.New()
	f.saved = itinerary
	return itinerary.ID, nil
}

func (f *fakeItineraryRepo) GetByID(ctx context.Context, id string) (*db_models.SavedItinerary, error) {
	if f.saved != nil && f.saved.ID.String() == id {
		return f.saved, nil
	}
	return nil, nil
}

func newFlowService(places []db_models.Place, aiArranger ArrangementStrategy, repo *fakeItineraryRepo) ItineraryServiceInterface {
	return NewItineraryService(
		newTestCandidateService(places),
		NewTransportService(nil),
		NewBudgetService(),
		aiArranger,
		repo,
	)
}

func flowRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		Origin:    "Jaipur",
		Budget:    40000,
		Days:      2,
		NumPeople: 2,
		TripType:  "FAMILY",
		StartDate: "2026-11-03",
	}
}

func TestGenerateItineraryValidation(t *testing.T) {
	svc := newFlowService(rajasthanFixtures(), nil, &fakeItineraryRepo{})

	tests := []struct {
		name   string
		mutate func(*request_models.GenerateItineraryRequest)
	}{
		{"missing origin", func(r *request_models.GenerateItineraryRequest) { r.Origin = "" }},
		{"zero budget", func(r *request_models.GenerateItineraryRequest) { r.Budget = 0 }},
		{"zero days", func(r *request_models.GenerateItineraryRequest) { r.Days = 0 }},
		{"missing trip type", func(r *request_models.GenerateItineraryRequest) { r.TripType = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := flowRequest()
			tt.mutate(&req)
			_, err := svc.GenerateItinerary(context.Background(), req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestGenerateItineraryHappyPath(t *testing.T) {
	repo := &fakeItineraryRepo{}
	svc := newFlowService(rajasthanFixtures(), nil, repo)

	resp, err := svc.GenerateItinerary(context.Background(), flowRequest())
	require.NoError(t, err)

	assert.Len(t, resp.Itinerary.Days, 2)
	assert.Equal(t, OriginExact, resp.Metadata.OriginResolution)
	assert.Equal(t, "Rajasthan", resp.Metadata.OriginState)
	assert.False(t, resp.Itinerary.ArrangedByAI)
	assert.NotEmpty(t, resp.Metadata.SavedItineraryID)
	require.NotNil(t, repo.saved)
	assert.Equal(t, "Jaipur", repo.saved.Origin)
}

func TestGenerateItineraryDegradesWhenStateEmpty(t *testing.T) {
	places := []db_models.Place{
		placeFixture("Hawa Mahal", "Jaipur", "Rajasthan", 26.9239, 75.8267),
	}
	svc := newFlowService(places, nil, &fakeItineraryRepo{})

	resp, err := svc.GenerateItinerary(context.Background(), flowRequest())
	require.NoError(t, err)

	assert.Len(t, resp.Itinerary.Days, 2)
	for _, d := range resp.Itinerary.Days {
		assert.Empty(t, d.Places)
	}
	assert.False(t, resp.Itinerary.PlanBAvailable)
	assert.NotEmpty(t, resp.Metadata.Warning)
}

func TestGenerateItineraryFallsBackWhenArrangerFails(t *testing.T) {
	failing := NewAIArranger(&fakeArrangerClient{err: errors.New("boom")}, 0)
	svc := newFlowService(rajasthanFixtures(), failing, &fakeItineraryRepo{})

	req := flowRequest()
	req.UseAIArranger = true

	resp, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Itinerary.ArrangedByAI)
	assert.Len(t, resp.Itinerary.Days, 2)
}

func TestGenerateItineraryIncludesTransport(t *testing.T) {
	svc := newFlowService(rajasthanFixtures(), nil, &fakeItineraryRepo{})

	req := flowRequest()
	req.PickupCity = "delhi"
	req.DropoffCity = "jaipur"

	resp, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Transport)
	assert.Greater(t, resp.Transport.TotalCost, 0.0)
}

func TestGenerateItinerarySkipsUnknownTransportCity(t *testing.T) {
	svc := newFlowService(rajasthanFixtures(), nil, &fakeItineraryRepo{})

	req := flowRequest()
	req.PickupCity = "atlantis"
	req.DropoffCity = "jaipur"

	resp, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.Transport)
}

func TestGenerateItinerarySurvivesSaveFailure(t *testing.T) {
	repo := &fakeItineraryRepo{saveErr: errors.New("db down")}
	svc := newFlowService(rajasthanFixtures(), nil, repo)

	resp, err := svc.GenerateItinerary(context.Background(), flowRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Metadata.SavedItineraryID)
}

func TestGetSavedItineraryRoundTrip(t *testing.T) {
	repo := &fakeItineraryRepo{}
	svc := newFlowService(rajasthanFixtures(), nil, repo)

	generated, err := svc.GenerateItinerary(context.Background(), flowRequest())
	require.NoError(t, err)
	require.NotEmpty(t, generated.Metadata.SavedItineraryID)

	fetched, err := svc.GetSavedItinerary(context.Background(), generated.Metadata.SavedItineraryID)
	require.NoError(t, err)
	assert.Equal(t, generated.Itinerary.Title, fetched.Itinerary.Title)
	assert.Len(t, fetched.Itinerary.Days, 2)

	var stored map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(repo.saved.Result), &stored))
}

func TestGetSavedItineraryNotFound(t *testing.T) {
	svc := newFlowService(rajasthanFixtures(), nil, &fakeItineraryRepo{})

	_, err := svc.GetSavedItinerary(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
}
