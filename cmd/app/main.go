package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripscout/cmd/fx/config_fx"
	"tripscout/cmd/fx/controllers_fx"
	"tripscout/cmd/fx/gmaps_fx"
	"tripscout/cmd/fx/recommend_fx"
	"tripscout/cmd/fx/travel_fx"
	"tripscout/internal/api/controllers"
	"tripscout/internal/config"
	"tripscout/pkg/middleware"
	"tripscout/pkg/utils"
)

func main() {
	app := fx.New(
		configfx.Module,
		gmapsfx.Module,
		recommendfx.Module,
		travelfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.App.Port))
				if err := engine.Run(":" + cfg.App.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			_ = logger.Sync()
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	attractionsController *controllers.AttractionsController,
	travelController *controllers.TravelController) *gin.Engine {

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, attractionsController, travelController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	attractionsController *controllers.AttractionsController,
	travelController *controllers.TravelController) {

	r.GET("/", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"service": "tripscout"}, "ok")
	})

	r.POST("/get_recommendations", attractionsController.GetRecommendations)
	r.POST("/search_city_attractions", attractionsController.SearchCityAttractions)
	r.POST("/get_route_attractions", attractionsController.GetRouteAttractions)
	r.POST("/get_travel_time", travelController.GetTravelTime)
}
