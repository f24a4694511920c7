package weatherfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"github.com/rosecen/qiongyou-travel-guide/internal/api/controllers"
	"github.com/rosecen/qiongyou-travel-guide/internal/infra"
	"github.com/rosecen/qiongyou-travel-guide/internal/services"
)

var Module = fx.Provide(
	ProvideForecastProvider,
	ProvideWeatherService,
	ProvideWeatherController)

// ProvideForecastProvider builds the OpenWeatherMap client, or nil when no
// credential is configured; the service then reports a configuration error.
func ProvideForecastProvider() services.ForecastProviderInterface {
	apiKey := os.Getenv("OPENWEATHERMAP_API_KEY")
	if apiKey == "" {
		log.Println("OPENWEATHERMAP_API_KEY not set, weather endpoint will report a configuration error")
		return nil
	}
	return infra.NewOpenWeatherClient(apiKey)
}

func ProvideWeatherService(provider services.ForecastProviderInterface) services.WeatherServiceInterface {
	return services.NewWeatherService(provider)
}

func ProvideWeatherController(weatherService services.WeatherServiceInterface) *controllers.WeatherController {
	return controllers.NewWeatherController(weatherService)
}
