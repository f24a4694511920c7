package services

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/rosecen/qiongyou-travel-guide/internal/infra"
	"github.com/rosecen/qiongyou-travel-guide/internal/models/response_models"
	"github.com/rosecen/qiongyou-travel-guide/pkg/utils"
)

// Free-tier forecasts cover at most 5 days.
const maxForecastDays = 5

// ForecastProviderInterface abstracts the weather provider for one spelling
// variant at a time.
type ForecastProviderInterface interface {
	FetchForecast(ctx context.Context, query string) (*infra.ForecastPayload, error)
}

type WeatherServiceInterface interface {
	GetForecast(ctx context.Context, city string) (*response_models.WeatherForecastResponse, error)
}

type WeatherService struct {
	provider ForecastProviderInterface
}

// NewWeatherService wires the weather orchestrator. provider is nil when the
// API key is missing; requests then fail closed with a configuration error.
func NewWeatherService(provider ForecastProviderInterface) WeatherServiceInterface {
	return &WeatherService{
		provider: provider,
	}
}

// GetForecast tries each spelling variant of the city in order until the
// provider accepts one, then collapses the 3-hour samples into daily entries.
// The response always carries the original localized city name.
func (s *WeatherService) GetForecast(ctx context.Context, city string) (*response_models.WeatherForecastResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, utils.ErrEmptyCityName
	}
	if s.provider == nil {
		return nil, utils.ErrWeatherNotConfigured
	}

	var payload *infra.ForecastPayload
	var lastErr error

	for _, query := range cityQueryCandidates(city) {
		result, err := s.provider.FetchForecast(ctx, query)
		if err != nil {
			lastErr = err
			log.Printf("forecast lookup failed for %q: %v", query, err)
			continue
		}
		payload = result
		break
	}

	if payload == nil {
		log.Printf("all spelling variants failed for city %q, last error: %v", city, lastErr)
		return nil, &utils.CityNotFoundError{City: city}
	}

	return &response_models.WeatherForecastResponse{
		City:     city,
		Country:  payload.City.Country,
		Timezone: utils.ChinaTimezone,
		Forecast: normalizeForecast(payload.List),
	}, nil
}

// normalizeForecast picks one representative sample per calendar day. The noon
// sample wins when present (last noon seen overrides), otherwise the first
// sample of the day stands. Days stay in chronological order and the result is
// capped at maxForecastDays.
func normalizeForecast(samples []infra.ForecastSample) []response_models.ForecastDay {
	byDate := make(map[string]infra.ForecastSample)
	var order []string

	for _, sample := range samples {
		ts := utils.FromUnixSecondsCN(sample.Dt)
		if ts.IsZero() {
			continue
		}
		key := ts.Format("2006-01-02")

		if _, seen := byDate[key]; !seen {
			order = append(order, key)
			byDate[key] = sample
			continue
		}
		if ts.Hour() == 12 {
			byDate[key] = sample
		}
	}

	if len(order) > maxForecastDays {
		order = order[:maxForecastDays]
	}

	forecast := make([]response_models.ForecastDay, 0, len(order))
	for _, key := range order {
		sample := byDate[key]

		var condition infra.SampleCondition
		if len(sample.Weather) > 0 {
			condition = sample.Weather[0]
		}

		forecast = append(forecast, response_models.ForecastDay{
			Date: utils.FormatChineseDate(utils.FromUnixSecondsCN(sample.Dt)),
			Temperature: response_models.TemperatureRange{
				Max: roundToInt(sample.Main.TempMax),
				Min: roundToInt(sample.Main.TempMin),
				Day: roundToInt(sample.Main.Temp),
			},
			Weather: response_models.WeatherCondition{
				Main:        condition.Main,
				Description: condition.Description,
				Icon:        condition.Icon,
			},
			Humidity:      sample.Main.Humidity,
			WindSpeed:     roundToInt(sample.Wind.Speed * 3.6), // m/s -> km/h
			Precipitation: roundToInt(sample.Pop * 100),
		})
	}

	return forecast
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
