package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultForecastBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherClient fetches 5-day/3-hour forecasts from OpenWeatherMap.
type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: defaultForecastBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchForecast requests the forecast for one city query string (a single
// spelling variant). Metric units and Chinese descriptions, matching what the
// frontend renders directly.
func (c *OpenWeatherClient) FetchForecast(ctx context.Context, query string) (*ForecastPayload, error) {
	endpoint := fmt.Sprintf("%s/forecast?q=%s&appid=%s&units=metric&lang=zh_cn",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(payload, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("forecast request error: status=%d message=%s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var forecast ForecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	return &forecast, nil
}

// ForecastPayload mirrors the provider's forecast endpoint response, limited to
// the fields the normalizer consumes.
type ForecastPayload struct {
	List []ForecastSample `json:"list"`
	City ForecastCity     `json:"city"`
}

type ForecastCity struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ForecastSample is one 3-hour forecast point.
type ForecastSample struct {
	Dt      int64             `json:"dt"`
	Main    SampleMain        `json:"main"`
	Weather []SampleCondition `json:"weather"`
	Wind    SampleWind        `json:"wind"`
	Pop     float64           `json:"pop"`
}

type SampleMain struct {
	Temp     float64 `json:"temp"`
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Humidity int     `json:"humidity"`
}

type SampleCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type SampleWind struct {
	Speed float64 `json:"speed"`
}
