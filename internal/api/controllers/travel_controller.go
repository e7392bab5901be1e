package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripscout/internal/models/request_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

type TravelController struct {
	travel services.TravelServiceInterface
}

func NewTravelController(travel services.TravelServiceInterface) *TravelController {
	return &TravelController{travel: travel}
}

func (t *TravelController) GetTravelTime(c *gin.Context) {
	var req request_models.TravelTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Origin == "" || req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Origin and destination are required")
		return
	}

	result := t.travel.TravelTime(c.Request.Context(), req.Origin, req.Destination)
	utils.RespondSuccess(c, result, "Travel times fetched successfully")
}
