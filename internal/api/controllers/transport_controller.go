package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yatra/internal/services"
	"yatra/pkg/utils"
)

type TransportController struct {
	transportService services.TransportServiceInterface
}

func NewTransportController(transportService services.TransportServiceInterface) *TransportController {
	return &TransportController{transportService: transportService}
}

func (t *TransportController) GetEstimate(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameters 'from' and 'to' are required")
		return
	}

	people, err := strconv.Atoi(c.DefaultQuery("people", "1"))
	if err != nil || people < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid people count")
		return
	}

	recommendation, terr := t.transportService.Recommend(from, to, people)
	if terr != nil {
		utils.HandleServiceError(c, terr)
		return
	}

	utils.RespondSuccess(c, recommendation, "Transport estimate generated successfully")
}
