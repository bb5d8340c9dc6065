package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yatra/internal/models/request_models"
)

func TestBuildArrangerPrompt(t *testing.T) {
	places := []request_models.ArrangerPlace{
		{Name: "Amber Fort", District: "Jaipur", DistanceKm: 11},
		{Name: "Pushkar Lake", DistanceKm: 140},
	}

	prompt := buildArrangerPrompt(places, "FAMILY", 2, "2026-11-03", []string{"NATURE"})

	assert.Contains(t, prompt, "Amber Fort")
	assert.Contains(t, prompt, "(Jaipur)")
	assert.Contains(t, prompt, "Pushkar Lake")
	assert.Contains(t, prompt, "Total days: 2")
	assert.Contains(t, prompt, "Trip type: FAMILY")
	assert.Contains(t, prompt, "NATURE")
}

func TestBuildArrangerPromptDefaults(t *testing.T) {
	prompt := buildArrangerPrompt(nil, "SOLO", 1, "", nil)

	assert.Contains(t, prompt, "Start date: unknown")
	assert.Contains(t, prompt, "Personalities: none")
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"days":[]}`, extractJSONObject("Here you go:\n```json\n{\"days\":[]}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSONObject(`{"a":1}`))
	assert.Equal(t, "no braces here", extractJSONObject("no braces here"))
}
