package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	aifx "vibeout/cmd/fx/ai_fx"
	dbfx "vibeout/cmd/fx/db_fx"
	planfx "vibeout/cmd/fx/plan_fx"
	venuesfx "vibeout/cmd/fx/venues_fx"
	"vibeout/internal/api/controllers"
	"vibeout/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		dbfx.Module,
		aifx.Module,
		venuesfx.Module,
		planfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(planController *controllers.PlanController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController)

	return r
}

func RegisterRoutes(r *gin.Engine, planController *controllers.PlanController) {

	api := r.Group("/api")
	api.POST("/plan-vibe", planController.PlanVibe)
	api.POST("/generate-itinerary", planController.GenerateItinerary)
	api.GET("/plans", planController.ListPlans)
}
