package placesfx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	providePlaceRepo,
	provideEmbeddingRepo,
	provideEmbeddingClient,
	providePlaceService,
	provideSearchService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.PlaceEmbeddingRepository {
	return repositories.NewPlaceEmbeddingRepository(db)
}

// provideEmbeddingClient returns nil when no API key is configured;
// semantic search then falls back to plain text matching.
func provideEmbeddingClient() utils.EmbeddingClientInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, semantic search will use text matching")
		return nil
	}
	return utils.NewOpenAIEmbeddingClient(apiKey)
}

func providePlaceService(placeRepo repositories.PlaceRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo)
}

func provideSearchService(
	placeRepo repositories.PlaceRepository,
	embeddingRepo repositories.PlaceEmbeddingRepository,
	embedClient utils.EmbeddingClientInterface,
) services.SearchServiceInterface {
	return services.NewSearchService(placeRepo, embeddingRepo, embedClient)
}
