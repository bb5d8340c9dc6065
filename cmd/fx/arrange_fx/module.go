package arrangefx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"yatra/internal/services"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	provideAIArranger)

// provideAIArranger wires the external arrangement model when one is
// configured. A nil strategy means the deterministic local plan is
// always used.
func provideAIArranger() services.ArrangementStrategy {
	provider := os.Getenv("ARRANGER_PROVIDER")
	if provider == "" {
		log.Println("ARRANGER_PROVIDER not set, itineraries use the local planner only")
		return nil
	}

	var apiKey string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		log.Printf("no API key configured for arranger provider %q, itineraries use the local planner only", provider)
		return nil
	}

	model := getEnvWithDefault("ARRANGER_MODEL", "")
	client, err := utils.NewArrangerClient(provider, apiKey, model)
	if err != nil {
		log.Printf("failed to create arranger client: %v", err)
		return nil
	}

	log.Printf("Initializing %s arranger client", provider)
	return services.NewAIArranger(client, arrangerTimeout())
}

func arrangerTimeout() time.Duration {
	raw := os.Getenv("ARRANGER_TIMEOUT_SECONDS")
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
