package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripscout/internal/models/request_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

const defaultRouteDistanceKm = 50

type AttractionsController struct {
	recommendations services.RecommendationServiceInterface
}

func NewAttractionsController(recommendations services.RecommendationServiceInterface) *AttractionsController {
	return &AttractionsController{recommendations: recommendations}
}

// GetRecommendations serves nearby attractions for a coordinate. A request
// without a usable coordinate is not an error: the caller declined to share
// a location and gets the famous-landmark list.
func (a *AttractionsController) GetRecommendations(c *gin.Context) {
	var req request_models.RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Lat == nil || req.Lng == nil {
		utils.RespondSuccess(c, a.recommendations.FamousRecommendations(), "Famous landmarks")
		return
	}

	result := a.recommendations.NearbyRecommendations(c.Request.Context(), *req.Lat, *req.Lng)
	utils.RespondSuccess(c, result, "Recommendations fetched successfully")
}

func (a *AttractionsController) SearchCityAttractions(c *gin.Context) {
	var req request_models.CityAttractionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CityName == "" {
		utils.RespondError(c, http.StatusBadRequest, "City name is required")
		return
	}

	result, err := a.recommendations.CityAttractions(c.Request.Context(), req.CityName)
	if err != nil {
		if errors.Is(err, utils.ErrCityNotFound) {
			message := fmt.Sprintf(
				"No attractions found for %q. Please check the spelling or try a different city.",
				req.CityName)
			utils.RespondErrorData(c, http.StatusNotFound, message, result)
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "City attractions fetched successfully")
}

func (a *AttractionsController) GetRouteAttractions(c *gin.Context) {
	var req request_models.RouteAttractionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Origin == "" || req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Origin and destination are required")
		return
	}

	if req.DistanceKm <= 0 {
		req.DistanceKm = defaultRouteDistanceKm
	}

	result := a.recommendations.RouteAttractions(c.Request.Context(), req.Origin, req.Destination, req.DistanceKm)
	utils.RespondSuccess(c, result, "Route attractions fetched successfully")
}
