package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripscout/internal/models/response_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

type fakeRecommendationService struct {
	nearby     func(lat, lng float64) response_models.RecommendationsResponse
	city       func(cityName string) (response_models.CityAttractionsResponse, error)
	route      func(origin, destination string, distanceKm float64) response_models.RouteAttractionsResponse
	routeCalls []float64
}

func (f *fakeRecommendationService) NearbyRecommendations(ctx context.Context, lat, lng float64) response_models.RecommendationsResponse {
	if f.nearby == nil {
		return response_models.RecommendationsResponse{}
	}
	return f.nearby(lat, lng)
}

func (f *fakeRecommendationService) FamousRecommendations() response_models.RecommendationsResponse {
	return response_models.RecommendationsResponse{
		Recommendations: services.FamousLandmarks(),
		Source:          "famous",
	}
}

func (f *fakeRecommendationService) CityAttractions(ctx context.Context, cityName string) (response_models.CityAttractionsResponse, error) {
	if f.city == nil {
		return response_models.CityAttractionsResponse{}, nil
	}
	return f.city(cityName)
}

func (f *fakeRecommendationService) RouteAttractions(ctx context.Context, origin, destination string, distanceKm float64) response_models.RouteAttractionsResponse {
	f.routeCalls = append(f.routeCalls, distanceKm)
	if f.route == nil {
		return response_models.RouteAttractionsResponse{}
	}
	return f.route(origin, destination, distanceKm)
}

func newTestRouter(fake *fakeRecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewAttractionsController(fake)
	r.POST("/get_recommendations", controller.GetRecommendations)
	r.POST("/search_city_attractions", controller.SearchCityAttractions)
	r.POST("/get_route_attractions", controller.GetRouteAttractions)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, body interface{}) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGetRecommendations_MissingCoordinateFallsBack(t *testing.T) {
	r := newTestRouter(&fakeRecommendationService{})

	w, resp := doJSON(t, r, "/get_recommendations", map[string]interface{}{})
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "famous", data["source"])
	assert.Len(t, data["recommendations"], 10)
}

func TestGetRecommendations_WithCoordinate(t *testing.T) {
	fake := &fakeRecommendationService{
		nearby: func(lat, lng float64) response_models.RecommendationsResponse {
			assert.Equal(t, 40.7580, lat)
			assert.Equal(t, -73.9855, lng)
			return response_models.RecommendationsResponse{
				Recommendations: []response_models.Place{{Name: "Central Park"}},
				Source:          "nearby",
			}
		},
	}
	r := newTestRouter(fake)

	w, resp := doJSON(t, r, "/get_recommendations", map[string]float64{"lat": 40.7580, "lng": -73.9855})
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "nearby", data["source"])
}

func TestSearchCityAttractions_MissingName(t *testing.T) {
	r := newTestRouter(&fakeRecommendationService{})

	w, resp := doJSON(t, r, "/search_city_attractions", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
}

func TestSearchCityAttractions_NotFoundCarriesEmptyPayload(t *testing.T) {
	fake := &fakeRecommendationService{
		city: func(cityName string) (response_models.CityAttractionsResponse, error) {
			return response_models.CityAttractionsResponse{
				Attractions: []response_models.Place{},
				City:        cityName,
			}, fmt.Errorf("city %q: %w", cityName, utils.ErrCityNotFound)
		},
	}
	r := newTestRouter(fake)

	w, resp := doJSON(t, r, "/search_city_attractions", map[string]string{"city_name": "Nowhere12345"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", resp.Status)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Nowhere12345", data["city"])
	assert.Equal(t, float64(0), data["count"])
	assert.Empty(t, data["attractions"])
}

func TestGetRouteAttractions_MissingEndpoints(t *testing.T) {
	r := newTestRouter(&fakeRecommendationService{})

	w, _ := doJSON(t, r, "/get_route_attractions", map[string]string{"origin": "New York"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRouteAttractions_DefaultDistance(t *testing.T) {
	fake := &fakeRecommendationService{}
	r := newTestRouter(fake)

	w, _ := doJSON(t, r, "/get_route_attractions", map[string]string{
		"origin":      "New York",
		"destination": "Boston",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, fake.routeCalls, 1)
	assert.Equal(t, 50.0, fake.routeCalls[0])
}
