package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/rosecen/qiongyou-travel-guide/cmd/fx/catalogfx"
	"github.com/rosecen/qiongyou-travel-guide/cmd/fx/guidefx"
	"github.com/rosecen/qiongyou-travel-guide/cmd/fx/weatherfx"
	"github.com/rosecen/qiongyou-travel-guide/internal/api/controllers"
	"github.com/rosecen/qiongyou-travel-guide/pkg/middleware"
)

func main() {
	// .env is only present in local development; deployments set env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := fx.New(
		guidefx.Module,
		weatherfx.Module,
		catalogfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	guideController *controllers.GuideController,
	weatherController *controllers.WeatherController,
	catalogController *controllers.CatalogController) *gin.Engine {

	r := gin.Default()

	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(corsConfig()))

	RegisterRoutes(r, guideController, weatherController, catalogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	guideController *controllers.GuideController,
	weatherController *controllers.WeatherController,
	catalogController *controllers.CatalogController) {

	api := r.Group("/api")
	api.POST("/generate-guide", guideController.GenerateGuideHandler)
	api.GET("/weather", weatherController.GetForecastHandler)
	api.GET("/styles", catalogController.ListStylesHandler)
	api.GET("/cities", catalogController.ListCitiesHandler)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// corsConfig allows the local dev servers plus any origins configured through
// FRONTEND_URL (comma-separated).
func corsConfig() cors.Config {
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs := os.Getenv("FRONTEND_URL"); frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			if u = strings.TrimSpace(u); u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.MaxAge = 12 * time.Hour
	return config
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
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
