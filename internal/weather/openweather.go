// README: OpenWeatherMap client; geocoding plus 5-day forecast aggregated per day.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"
)

// Client talks to the OpenWeatherMap API. Any weather service with a
// geocode + per-day forecast shape is substitutable behind the forecast
// module's Source interface.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a Client. The timeout bounds every call; context
// cancellation is honoured via NewRequestWithContext.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type geocodeEntry struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Geocode resolves a free-text destination to coordinates.
// An unknown destination returns ErrLocationNotFound.
func (c *Client) Geocode(ctx context.Context, city string) (Location, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var entries []geocodeEntry
	if err := c.getJSON(ctx, "/geo/1.0/direct", q, &entries); err != nil {
		return Location{}, err
	}
	if len(entries) == 0 {
		return Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, city)
	}
	return Location{Name: entries[0].Name, Lat: entries[0].Lat, Lon: entries[0].Lon}, nil
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
		} `json:"weather"`
		Pop float64 `json:"pop"`
	} `json:"list"`
}

// Forecast fetches the 5-day/3-hour forecast and folds it into one entry
// per calendar day: min/max temperature over all slots, the worst
// precipitation probability, and the condition of the wettest slot.
func (c *Client) Forecast(ctx context.Context, loc Location) ([]DayForecast, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", loc.Lat))
	q.Set("lon", fmt.Sprintf("%f", loc.Lon))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	var resp forecastResponse
	if err := c.getJSON(ctx, "/data/2.5/forecast", q, &resp); err != nil {
		return nil, err
	}
	if len(resp.List) == 0 {
		return nil, fmt.Errorf("weather: empty forecast for %s", loc.Name)
	}

	byDay := map[string]*DayForecast{}
	for _, slot := range resp.List {
		ts := time.Unix(slot.Dt, 0).UTC()
		day := ts.Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")

		df, ok := byDay[key]
		if !ok {
			df = &DayForecast{
				Date:              day,
				MinTempC:          slot.Main.TempMin,
				MaxTempC:          slot.Main.TempMax,
				PrecipProbability: -1,
			}
			byDay[key] = df
		}
		if slot.Main.TempMin < df.MinTempC {
			df.MinTempC = slot.Main.TempMin
		}
		if slot.Main.TempMax > df.MaxTempC {
			df.MaxTempC = slot.Main.TempMax
		}
		if slot.Pop > df.PrecipProbability {
			df.PrecipProbability = slot.Pop
			if len(slot.Weather) > 0 {
				df.ConditionCode = slot.Weather[0].ID
				df.Description = slot.Weather[0].Description
			}
		}
	}

	days := make([]DayForecast, 0, len(byDay))
	for _, df := range byDay {
		days = append(days, *df)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("weather: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("weather: read response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrLocationNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather: api status %d: %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("weather: unmarshal response: %w", err)
	}
	return nil
}
