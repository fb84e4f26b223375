package weather

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"github.com/teemow/daybrief/internal/logging"
)

// DefaultBaseURL is the FMI open data WFS endpoint.
const DefaultBaseURL = "https://opendata.fmi.fi/wfs"

// DefaultCity is used when DEFAULT_CITY is not set and the prompt names
// no place.
const DefaultCity = "Lappeenranta"

// storedQuery selects simple weather observations for a named place.
const storedQuery = "fmi::observations::weather::simple"

// CityFromEnv returns the DEFAULT_CITY environment variable if set,
// else DefaultCity.
func CityFromEnv() string {
	if city := os.Getenv("DEFAULT_CITY"); city != "" {
		return city
	}
	return DefaultCity
}

// Client fetches current weather observations from the FMI open data
// WFS service. FMI requires no authentication.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the WFS endpoint. Used in tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger sets the client's logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates an FMI open data client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// featureCollection mirrors the subset of the WFS response we read:
// one BsWfsElement per (time, parameter) pair.
type featureCollection struct {
	Members []struct {
		Element struct {
			Time  string  `xml:"Time"`
			Name  string  `xml:"ParameterName"`
			Value float64 `xml:"ParameterValue"`
		} `xml:"BsWfsElement"`
	} `xml:"member"`
}

// observation is one timestamped set of parameter readings.
type observation struct {
	Time   time.Time
	Values map[string]float64
}

// Current returns a one-line summary of the latest temperature and wind
// speed observation for the city. An unknown place yields a "no data"
// message rather than an error, matching how the rest of the assistant
// reports empty results.
func (c *Client) Current(ctx context.Context, city string) (string, error) {
	if city == "" {
		city = CityFromEnv()
	}

	obs, err := c.fetchObservations(ctx, city)
	if err != nil {
		return "", err
	}

	latest, ok := latestComplete(obs)
	if !ok {
		return fmt.Sprintf("No weather data found for %s", city), nil
	}

	return fmt.Sprintf("Temperature in %s is %.1f °C, wind speed is %.1f m/s recorded at %s",
		city,
		latest.Values["t2m"],
		latest.Values["ws_10min"],
		latest.Time.Format("2006-01-02 15:04:05")), nil
}

// fetchObservations queries the stored WFS query for the last hour of
// temperature and wind readings at the place.
func (c *Client) fetchObservations(ctx context.Context, city string) ([]observation, error) {
	q := url.Values{}
	q.Set("service", "WFS")
	q.Set("version", "2.0.0")
	q.Set("request", "getFeature")
	q.Set("storedquery_id", storedQuery)
	q.Set("place", city)
	q.Set("parameters", "t2m,ws_10min")
	q.Set("maxlocations", "1")

	reqURL := c.baseURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build FMI request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query FMI open data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("FMI query failed",
			logging.Operation("weather.fetch"),
			slog.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("FMI open data returned status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read FMI response: %w", err)
	}

	return parseObservations(body)
}

// parseObservations groups the flat (time, parameter, value) elements
// of the WFS response into per-timestamp observations, oldest first.
func parseObservations(data []byte) ([]observation, error) {
	var fc featureCollection
	if err := xml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse FMI response: %w", err)
	}

	byTime := make(map[time.Time]map[string]float64)
	for _, m := range fc.Members {
		ts, err := time.Parse(time.RFC3339, m.Element.Time)
		if err != nil {
			continue
		}
		if byTime[ts] == nil {
			byTime[ts] = make(map[string]float64)
		}
		byTime[ts][m.Element.Name] = m.Element.Value
	}

	obs := make([]observation, 0, len(byTime))
	for ts, values := range byTime {
		obs = append(obs, observation{Time: ts, Values: values})
	}
	sort.Slice(obs, func(i, j int) bool { return obs[i].Time.Before(obs[j].Time) })
	return obs, nil
}

// latestComplete returns the newest observation carrying both readings.
// FMI reports NaN for parameters a station does not measure.
func latestComplete(obs []observation) (observation, bool) {
	for i := len(obs) - 1; i >= 0; i-- {
		t, hasTemp := obs[i].Values["t2m"]
		w, hasWind := obs[i].Values["ws_10min"]
		if hasTemp && hasWind && t == t && w == w { // NaN != NaN
			return obs[i], true
		}
	}
	return observation{}, false
}
