package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rosecen/qiongyou-travel-guide/internal/infra"
	"github.com/rosecen/qiongyou-travel-guide/pkg/utils"
)

type stubForecastProvider struct {
	queries  []string
	payloads map[string]*infra.ForecastPayload
}

func (s *stubForecastProvider) FetchForecast(ctx context.Context, query string) (*infra.ForecastPayload, error) {
	s.queries = append(s.queries, query)
	if payload, ok := s.payloads[query]; ok {
		return payload, nil
	}
	return nil, errors.New("city not found")
}

var cstZone = time.FixedZone("CST", 8*3600)

func sampleAt(t *testing.T, hour int, temp float64) infra.ForecastSample {
	t.Helper()
	return infra.ForecastSample{
		Dt: time.Date(2024, 7, 1, hour, 0, 0, 0, cstZone).Unix(),
		Main: infra.SampleMain{
			Temp:     temp,
			TempMin:  temp - 3,
			TempMax:  temp + 3,
			Humidity: 60,
		},
		Weather: []infra.SampleCondition{{Main: "Clear", Description: "晴", Icon: "01d"}},
		Wind:    infra.SampleWind{Speed: 5},
		Pop:     0.35,
	}
}

func beijingPayload(t *testing.T) *infra.ForecastPayload {
	t.Helper()
	return &infra.ForecastPayload{
		List: []infra.ForecastSample{sampleAt(t, 9, 25)},
		City: infra.ForecastCity{Name: "Beijing", Country: "CN"},
	}
}

func TestGetForecastTriesSpellingVariantsInOrder(t *testing.T) {
	provider := &stubForecastProvider{
		payloads: map[string]*infra.ForecastPayload{"北京": beijingPayload(t)},
	}
	svc := NewWeatherService(provider)

	resp, err := svc.GetForecast(context.Background(), "北京")
	require.NoError(t, err)
	// First variant failed, the localized one succeeded; later variants skipped.
	require.Equal(t, []string{"Beijing", "北京"}, provider.queries)
	require.Equal(t, "北京", resp.City)
	require.Equal(t, "CN", resp.Country)
	require.Equal(t, utils.ChinaTimezone, resp.Timezone)
}

func TestGetForecastAllVariantsFail(t *testing.T) {
	provider := &stubForecastProvider{}
	svc := NewWeatherService(provider)

	_, err := svc.GetForecast(context.Background(), "亚特兰蒂斯")
	var notFound *utils.CityNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "亚特兰蒂斯", notFound.City)
	require.Len(t, provider.queries, 4)
}

func TestGetForecastEmptyCity(t *testing.T) {
	svc := NewWeatherService(&stubForecastProvider{})

	_, err := svc.GetForecast(context.Background(), "   ")
	require.ErrorIs(t, err, utils.ErrEmptyCityName)
}

func TestGetForecastWithoutProvider(t *testing.T) {
	svc := NewWeatherService(nil)

	_, err := svc.GetForecast(context.Background(), "北京")
	require.ErrorIs(t, err, utils.ErrWeatherNotConfigured)
}

func TestNormalizeForecastPrefersNoonSample(t *testing.T) {
	days := normalizeForecast([]infra.ForecastSample{
		sampleAt(t, 9, 20),
		sampleAt(t, 12, 28),
		sampleAt(t, 18, 24),
	})

	require.Len(t, days, 1)
	require.Equal(t, "7月1日 周一", days[0].Date)
	require.Equal(t, 28, days[0].Temperature.Day)
	require.Equal(t, 31, days[0].Temperature.Max)
	require.Equal(t, 25, days[0].Temperature.Min)
}

func TestNormalizeForecastFirstSampleWhenNoNoon(t *testing.T) {
	days := normalizeForecast([]infra.ForecastSample{
		sampleAt(t, 3, 18),
		sampleAt(t, 21, 26),
	})

	require.Len(t, days, 1)
	require.Equal(t, 18, days[0].Temperature.Day)
}

func TestNormalizeForecastUnitConversions(t *testing.T) {
	days := normalizeForecast([]infra.ForecastSample{sampleAt(t, 12, 25)})

	require.Len(t, days, 1)
	require.Equal(t, 18, days[0].WindSpeed)     // 5 m/s -> 18 km/h
	require.Equal(t, 35, days[0].Precipitation) // pop 0.35 -> 35%
	require.Equal(t, 60, days[0].Humidity)
	require.Equal(t, "Clear", days[0].Weather.Main)
	require.Equal(t, "晴", days[0].Weather.Description)
	require.Equal(t, "01d", days[0].Weather.Icon)
}

func TestNormalizeForecastCapsAtFiveDays(t *testing.T) {
	var samples []infra.ForecastSample
	for offset := 0; offset < 7; offset++ {
		sample := sampleAt(t, 12, 25)
		sample.Dt = time.Date(2024, 7, 1+offset, 12, 0, 0, 0, cstZone).Unix()
		samples = append(samples, sample)
	}

	days := normalizeForecast(samples)
	require.Len(t, days, maxForecastDays)
	require.Equal(t, "7月1日 周一", days[0].Date)
	require.Equal(t, "7月5日 周五", days[4].Date)
}

func TestNormalizeForecastSkipsInvalidTimestamps(t *testing.T) {
	sample := sampleAt(t, 12, 25)
	sample.Dt = 0

	require.Empty(t, normalizeForecast([]infra.ForecastSample{sample}))
}
