package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/pkg/utils"
)

func TestRecommendShortHop(t *testing.T) {
	svc := NewTransportService(nil)

	rec, err := svc.Recommend("mumbai", "pune", 2)
	require.NoError(t, err)

	// ~120 km: medium band, train first
	assert.Equal(t, "TRAIN", rec.Recommended.Type)
	assert.Equal(t, rec.Recommended.CostPerPerson*2, rec.TotalCost)
	assert.NotEmpty(t, rec.Alternatives)
}

func TestRecommendLongHaul(t *testing.T) {
	svc := NewTransportService(nil)

	rec, err := svc.Recommend("delhi", "chennai", 1)
	require.NoError(t, err)

	assert.Equal(t, "FLIGHT", rec.Recommended.Type)
	assert.Greater(t, rec.DistanceKm, 1000.0)
}

func TestRecommendCaseInsensitiveCityNames(t *testing.T) {
	svc := NewTransportService(nil)

	rec, err := svc.Recommend("  Delhi ", "JAIPUR", 1)
	require.NoError(t, err)
	assert.Greater(t, rec.DistanceKm, 0.0)
}

func TestRecommendUnknownCity(t *testing.T) {
	svc := NewTransportService(nil)

	_, err := svc.Recommend("delhi", "atlantis", 1)
	assert.ErrorIs(t, err, utils.ErrUnknownTransportCity)
}

func TestRecommendDefaultsPeopleToOne(t *testing.T) {
	svc := NewTransportService(nil)

	rec, err := svc.Recommend("delhi", "jaipur", 0)
	require.NoError(t, err)
	assert.Equal(t, rec.Recommended.CostPerPerson, rec.TotalCost)
}

func TestTransportOptionsBands(t *testing.T) {
	assert.Equal(t, "BUS", transportOptions(60)[0].Type)
	assert.Equal(t, "TRAIN", transportOptions(350)[0].Type)
	assert.Equal(t, "FLIGHT", transportOptions(800)[0].Type)
	assert.Equal(t, "FLIGHT", transportOptions(1800)[0].Type)
}
