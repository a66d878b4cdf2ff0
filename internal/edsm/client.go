// Package edsm enriches the exploration store with catalog data from
// the EDSM public API, filling in bodies the journals never scanned.
package edsm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"explodata/internal/config"
	"explodata/internal/log"
)

// SystemBodies is the EDSM bodies response for one system.
type SystemBodies struct {
	Name   string `json:"name"`
	Bodies []Body `json:"bodies"`
}

// Body is one catalog body. Star and planet attributes share the
// struct; Type tells them apart.
type Body struct {
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	BodyID            int64    `json:"bodyId"`
	SubType           string   `json:"subType"`
	DistanceToArrival float64  `json:"distanceToArrival"`
	OrbitalPeriod     *float64 `json:"orbitalPeriod"`
	RotationalPeriod  float64  `json:"rotationalPeriod"`

	// stars
	SpectralClass string  `json:"spectralClass"`
	Luminosity    string  `json:"luminosity"`
	SolarMasses   float64 `json:"solarMasses"`

	// planets
	IsLandable            bool               `json:"isLandable"`
	Gravity               float64            `json:"gravity"`
	EarthMasses           float64            `json:"earthMasses"`
	SurfaceTemperature    *float64           `json:"surfaceTemperature"`
	VolcanismType         string             `json:"volcanismType"`
	AtmosphereType        string             `json:"atmosphereType"`
	AtmosphereComposition map[string]float64 `json:"atmosphereComposition"`
	TerraformingState     string             `json:"terraformingState"`
	Materials             map[string]float64 `json:"materials"`
	Belts                 []RingData         `json:"belts"`
	Rings                 []RingData         `json:"rings"`
}

// RingData is one ring or belt in catalog form.
type RingData struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Client fetches body catalogs from EDSM. Requests run behind a
// circuit breaker so a flapping or rate-limiting catalog does not
// stall every lookup for its full timeout.
type Client struct {
	http    *http.Client
	baseURL string
	breaker *gobreaker.CircuitBreaker[SystemBodies]
}

func NewClient(cfg config.EDSMConfig) *Client {
	settings := gobreaker.Settings{
		Name:        "edsm",
		MaxRequests: 3,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Catalog circuit state changed", "name", name,
				"from", from.String(), "to", to.String())
		},
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.URL,
		breaker: gobreaker.NewCircuitBreaker[SystemBodies](settings),
	}
}

// Bodies fetches the catalog bodies for a system by name.
func (c *Client) Bodies(ctx context.Context, systemName string) (SystemBodies, error) {
	return c.breaker.Execute(func() (SystemBodies, error) {
		return c.fetch(ctx, systemName)
	})
}

func (c *Client) fetch(ctx context.Context, systemName string) (SystemBodies, error) {
	reqURL := c.baseURL + "?systemName=" + url.QueryEscape(systemName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return SystemBodies{}, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return SystemBodies{}, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return SystemBodies{}, fmt.Errorf("catalog request returned status %d", resp.StatusCode)
	}

	var bodies SystemBodies
	if err = json.NewDecoder(resp.Body).Decode(&bodies); err != nil {
		return SystemBodies{}, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return bodies, nil
}
