package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/BruksfildServices01/padel-club/internal/httperr"
)

const DefaultBaseURL = "https://api.open-meteo.com"

// OpenMeteoClient consulta a previsão diária do open-meteo.
type OpenMeteoClient struct {
	baseURL string
	http    *http.Client
}

func NewOpenMeteoClient(baseURL string, timeout time.Duration) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenMeteoClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type openMeteoResponse struct {
	Daily struct {
		WeatherCode   []int     `json:"weather_code"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		PrecipProbMax []int     `json:"precipitation_probability_max"`
	} `json:"daily"`
}

func (c *OpenMeteoClient) Forecast(ctx context.Context, lat, lon float64, date string) (*Forecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max")
	q.Set("start_date", date)
	q.Set("end_date", date)
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/v1/forecast?"+q.Encode(),
		nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, httperr.ErrBusiness("upstream_unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httperr.ErrBusiness("upstream_unavailable")
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, httperr.ErrBusiness("upstream_unavailable")
	}

	if len(payload.Daily.WeatherCode) == 0 {
		return nil, httperr.ErrBusiness("upstream_unavailable")
	}

	f := &Forecast{
		Condition: conditionFromCode(payload.Daily.WeatherCode[0]),
	}
	if len(payload.Daily.TempMax) > 0 {
		f.TempMaxC = payload.Daily.TempMax[0]
	}
	if len(payload.Daily.TempMin) > 0 {
		f.TempMinC = payload.Daily.TempMin[0]
	}
	if len(payload.Daily.PrecipProbMax) > 0 {
		f.PrecipChance = payload.Daily.PrecipProbMax[0]
	}
	f.OutdoorFriendly = f.PrecipChance < 50 && f.Condition != "rain" && f.Condition != "storm"

	return f, nil
}

// Códigos WMO reduzidos ao que interessa para quadra descoberta.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 3:
		return "cloudy"
	case code <= 48:
		return "fog"
	case code <= 67:
		return "rain"
	case code <= 77:
		return "snow"
	case code <= 82:
		return "rain"
	default:
		return "storm"
	}
}

var _ Forecaster = (*OpenMeteoClient)(nil)
