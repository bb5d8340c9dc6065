package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	budgetService    services.BudgetServiceInterface
	transportService services.TransportServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	budgetService services.BudgetServiceInterface,
	transportService services.TransportServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		budgetService:    budgetService,
		transportService: transportService,
	}
}

func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}

func (i *ItineraryController) GetSavedItinerary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	result, err := i.itineraryService.GetSavedItinerary(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary fetched successfully")
}

func (i *ItineraryController) ValidateBudget(c *gin.Context) {
	var req request_models.ValidateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Budget <= 0 || req.Days <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Budget and days must be positive")
		return
	}

	transportCost := 0.0
	pickup := strings.TrimSpace(req.PickupCity)
	dropoff := strings.TrimSpace(req.DropoffCity)
	if pickup != "" && dropoff != "" && !strings.EqualFold(pickup, dropoff) {
		if rec, err := i.transportService.Recommend(pickup, dropoff, req.NumPeople); err == nil {
			transportCost = rec.TotalCost
		}
	}

	validation := i.budgetService.Validate(req.Budget, req.Days, req.NumPeople, transportCost)
	utils.RespondSuccess(c, validation, "Budget validated successfully")
}
