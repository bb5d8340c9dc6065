package utils

import (
	"context"
	"fmt"
	"strings"

	"yatra/internal/models/request_models"
)

// ArrangerClientInterface is the external arrangement call: given a
// candidate list and trip parameters it returns a raw JSON day-by-day
// grouping (morning/afternoon/evening buckets of place names). The
// caller owns parsing and the fallback to the local assembler.
type ArrangerClientInterface interface {
	ArrangeItinerary(ctx context.Context, places []request_models.ArrangerPlace, tripType string, days int, startDate string, personalities []string) (string, error)
}

// NewArrangerClient selects a provider by name, mirroring the
// EMBEDDING_PROVIDER switch. Supported: "openai", "gemini".
func NewArrangerClient(provider, apiKey, model string) (ArrangerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIArrangerClient(apiKey, model), nil
	case "gemini":
		return NewGeminiArrangerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported arranger provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

// buildArrangerPrompt builds the strict-JSON instruction shared by both
// providers. Place names must be echoed back verbatim.
func buildArrangerPrompt(places []request_models.ArrangerPlace, tripType string, days int, startDate string, personalities []string) string {
	var list strings.Builder
	for i, p := range places {
		fmt.Fprintf(&list, "%d. %s – %.0f km", i+1, p.Name, p.DistanceKm)
		if p.District != "" {
			fmt.Fprintf(&list, " (%s)", p.District)
		}
		list.WriteString("\n")
	}

	if startDate == "" {
		startDate = "unknown"
	}
	personalityList := strings.Join(personalities, ", ")
	if personalityList == "" {
		personalityList = "none"
	}

	return fmt.Sprintf(`You are a travel itinerary organizer.

RULES (STRICT):
- Use ONLY the places given.
- Do NOT add new places.
- Try to use ALL or MOST places provided.
- Respect total days = %d.
- Aim for 4-5 tourist attractions per day.
- Distribute places evenly across all days.
- Group nearby places together.

Trip type: %s
Total days: %d
Start date: %s
Personalities: %s

INPUT PLACES:
%s
OUTPUT INSTRUCTIONS (STRICT):
Return a JSON object ONLY, with the shape:
{"days": [{"day": 1, "morning": ["Place A"], "afternoon": ["Place B"], "evening": ["Place C"], "notes": "short note"}], "explanation": "one-paragraph explanation"}
- Place names must match exactly the input names.
- Each time slot (morning/afternoon/evening) can have multiple places.

Be concise and return valid JSON only.`,
		days, tripType, days, startDate, personalityList, list.String())
}

// extractJSONObject trims any prose around the outermost JSON object.
func extractJSONObject(content string) string {
	first := strings.Index(content, "{")
	last := strings.LastIndex(content, "}")
	if first != -1 && last > first {
		return content[first : last+1]
	}
	return content
}
