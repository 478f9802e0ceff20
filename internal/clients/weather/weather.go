// Package weather fetches daily forecasts from the Open-Meteo API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

type HourForecast struct {
	Temp float64 `json:"temp"`
	Code int     `json:"code"`
}

type DayForecast struct {
	MaxTemp float64                 `json:"maxTemp"`
	Code    int                     `json:"code"`
	Hourly  map[string]HourForecast `json:"hourly,omitempty"` // keyed by hour "0".."23"
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

type apiResponse struct {
	Daily struct {
		Time        []string  `json:"time"`
		TempMax     []float64 `json:"temperature_2m_max"`
		WeatherCode []int     `json:"weathercode"`
	} `json:"daily"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temp        []float64 `json:"temperature_2m"`
		WeatherCode []int     `json:"weathercode"`
	} `json:"hourly"`
}

// Forecast returns per-date forecasts keyed by ISO date for the next days
// days at lat/lon. Callers treat a failure as non-fatal and should fall back
// to an empty map.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, days int) (map[string]DayForecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "temperature_2m_max,weathercode")
	q.Set("hourly", "temperature_2m,weathercode")
	q.Set("forecast_days", fmt.Sprintf("%d", days))
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api: status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	out := make(map[string]DayForecast, len(body.Daily.Time))
	for i, date := range body.Daily.Time {
		df := DayForecast{Hourly: make(map[string]HourForecast)}
		if i < len(body.Daily.TempMax) {
			df.MaxTemp = body.Daily.TempMax[i]
		}
		if i < len(body.Daily.WeatherCode) {
			df.Code = body.Daily.WeatherCode[i]
		}
		out[date] = df
	}
	// Hourly entries come as "2006-01-02T15:04"; fold them into their day.
	for i, stamp := range body.Hourly.Time {
		t, err := time.Parse("2006-01-02T15:04", stamp)
		if err != nil {
			continue
		}
		date := t.Format("2006-01-02")
		df, ok := out[date]
		if !ok {
			continue
		}
		h := HourForecast{}
		if i < len(body.Hourly.Temp) {
			h.Temp = body.Hourly.Temp[i]
		}
		if i < len(body.Hourly.WeatherCode) {
			h.Code = body.Hourly.WeatherCode[i]
		}
		df.Hourly[fmt.Sprintf("%d", t.Hour())] = h
		out[date] = df
	}
	return out, nil
}
