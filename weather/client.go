// Package weather resolves coordinates into the page's weather readout
// via two chained lookups: reverse geocode, then current conditions.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"startpage/model"
)

const (
	// DefaultGeocoderURL is a Nominatim-compatible reverse geocoder.
	DefaultGeocoderURL = "https://nominatim.openstreetmap.org/reverse"
	// DefaultForecastURL is an Open-Meteo-compatible forecast endpoint.
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

	requestTimeout = 8 * time.Second
)

// Client performs the geocode and forecast lookups. Both are read-only,
// unauthenticated and best-effort: any failure is terminal for the
// session, there are no retries.
type Client struct {
	geocoderURL string
	forecastURL string
	httpClient  *http.Client
}

// NewClient creates a weather client. Empty URLs select the defaults.
func NewClient(geocoderURL, forecastURL string) *Client {
	if geocoderURL == "" {
		geocoderURL = DefaultGeocoderURL
	}
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}
	return &Client{
		geocoderURL: geocoderURL,
		forecastURL: forecastURL,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

// Current resolves coordinates to the weather readout: place name from
// the geocoder, then temperature and condition from the forecast
// endpoint. The second lookup only starts after the first resolves.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*model.WeatherData, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	city, err := c.reverseGeocode(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode: %w", err)
	}

	temp, code, err := c.currentForecast(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	cond := DescribeWMO(code)
	return &model.WeatherData{
		TempC:     temp,
		Condition: cond.Label,
		Icon:      cond.Icon,
		City:      city,
	}, nil
}

type geocodeResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
	} `json:"address"`
}

func (c *Client) reverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", fmt.Sprintf("%.4f", lat))
	q.Set("lon", fmt.Sprintf("%.4f", lon))

	var resp geocodeResponse
	if err := c.getJSON(ctx, c.geocoderURL+"?"+q.Encode(), &resp); err != nil {
		return "", err
	}

	for _, name := range []string{resp.Address.City, resp.Address.Town, resp.Address.Village, resp.Address.County} {
		if name != "" {
			return name, nil
		}
	}
	return "here", nil
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

func (c *Client) currentForecast(ctx context.Context, lat, lon float64) (float64, int, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current_weather", "true")

	var resp forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+q.Encode(), &resp); err != nil {
		return 0, 0, err
	}
	return resp.CurrentWeather.Temperature, resp.CurrentWeather.WeatherCode, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "startpage")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
