package plannerfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideRouteRepo,
	provideItineraryRepo,
	provideCandidateService,
	provideTransportService,
	provideBudgetService,
	provideItineraryService)

func provideRouteRepo(db *gorm.DB) repositories.RouteRepository {
	return repositories.NewRouteRepository(db)
}

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideCandidateService(
	placeRepo repositories.PlaceRepository,
	routeRepo repositories.RouteRepository,
) services.CandidateServiceInterface {
	return services.NewCandidateService(placeRepo, routeRepo, nil)
}

func provideTransportService() services.TransportServiceInterface {
	return services.NewTransportService(nil)
}

func provideBudgetService() services.BudgetServiceInterface {
	return services.NewBudgetService()
}

func provideItineraryService(
	candidateService services.CandidateServiceInterface,
	transportService services.TransportServiceInterface,
	budgetService services.BudgetServiceInterface,
	aiArranger services.ArrangementStrategy,
	itineraryRepo repositories.ItineraryRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(
		candidateService,
		transportService,
		budgetService,
		aiArranger,
		itineraryRepo,
	)
}
