package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"roamio/cmd/fx/controllers_fx"
	"roamio/cmd/fx/directory_fx"
	"roamio/cmd/fx/guide_fx"
	"roamio/cmd/fx/session_fx"
	"roamio/internal/api/controllers"
	"roamio/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		directory_fx.Module,
		guide_fx.Module,
		session_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
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

func ProvideRouter(
	suggestController *controllers.SuggestController,
	sessionController *controllers.SessionController,
	guideController *controllers.GuideController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, suggestController, sessionController, guideController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	suggestController *controllers.SuggestController,
	sessionController *controllers.SessionController,
	guideController *controllers.GuideController) {

	suggestGroup := r.Group("/suggest")
	suggestGroup.GET("/cities", suggestController.MatchCities)
	suggestGroup.GET("/countries", suggestController.MatchCountries)
	suggestGroup.GET("/cities-for-country", suggestController.CitiesForCountry)

	sessionGroup := r.Group("/sessions")
	sessionGroup.POST("", sessionController.CreateSession)
	sessionGroup.GET("/:id", sessionController.GetSession)
	sessionGroup.POST("/:id/form/events", sessionController.ApplyFormEvent)
	sessionGroup.POST("/:id/form/select", sessionController.SelectSuggestion)
	sessionGroup.POST("/:id/submit", sessionController.Submit)
	sessionGroup.POST("/:id/tab", sessionController.SelectTab)
	sessionGroup.POST("/:id/map/style", sessionController.ToggleMapStyle)
	sessionGroup.POST("/:id/map/jump", sessionController.JumpToAttraction)
	sessionGroup.POST("/:id/map/ready", sessionController.MapSurfaceReady)
	sessionGroup.POST("/:id/reset", sessionController.Reset)

	r.POST("/guides", guideController.GenerateGuide)
	r.GET("/map/config", guideController.MapConfig)
}
