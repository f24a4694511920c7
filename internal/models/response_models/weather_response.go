package response_models

// WeatherForecastResponse is the body of GET /api/weather. City is always the
// original localized name from the query, never a romanized variant.
type WeatherForecastResponse struct {
	City     string        `json:"city"`
	Country  string        `json:"country"`
	Timezone string        `json:"timezone"`
	Forecast []ForecastDay `json:"forecast"`
}

// ForecastDay is one calendar day collapsed from the provider's 3-hour samples.
type ForecastDay struct {
	Date          string           `json:"date"`
	Temperature   TemperatureRange `json:"temperature"`
	Weather       WeatherCondition `json:"weather"`
	Humidity      int              `json:"humidity"`
	WindSpeed     int              `json:"windSpeed"`
	Precipitation int              `json:"precipitation"`
}

type TemperatureRange struct {
	Max int `json:"max"`
	Min int `json:"min"`
	Day int `json:"day"`
}

type WeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CityCatalog lists the cities the frontend offers: the quick-pick shortcuts
// and every city with a romanized alias for weather lookups.
type CityCatalog struct {
	Popular   []string `json:"popular"`
	Supported []string `json:"supported"`
}
