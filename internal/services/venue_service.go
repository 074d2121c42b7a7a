package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

type FoursquareVenue struct {
	FsqID    string  `json:"fsq_id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"` // Foursquare uses a 0-10 scale
	Location struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"location"`
	Stats struct {
		TotalCheckIns int `json:"total_check_ins"`
		TotalVisits   int `json:"total_visits"`
	} `json:"stats"`
}

type VenueSearchService interface {
	SearchVenues(ctx context.Context, query, near string, radiusMeters int) ([]FoursquareVenue, error)
}

type FoursquareClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	Limit   int
}

func NewFoursquareClient() *FoursquareClient {
	key := os.Getenv("FOURSQUARE_API_KEY")
	if key == "" {
		panic("FOURSQUARE_API_KEY is empty")
	}
	return &FoursquareClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  key,
		BaseURL: "https://api.foursquare.com",
		Limit:   10,
	}
}

func (c *FoursquareClient) SearchVenues(ctx context.Context, query, near string, radiusMeters int) ([]FoursquareVenue, error) {
	limit := c.Limit
	if limit <= 0 {
		limit = 10
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("near", near)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("sort", "POPULARITY")
	if radiusMeters > 0 {
		q.Set("radius", strconv.Itoa(radiusMeters))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v3/places/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("foursquare request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("foursquare http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("foursquare bad status: %s", resp.Status)
	}

	var payload struct {
		Results []FoursquareVenue `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("foursquare decode: %w", err)
	}

	return payload.Results, nil
}

// VenueScore is the popularity-weighted ranking used to pick one venue per
// category: 60% rating (normalized from Foursquare's 0-10 scale), 40%
// check-in/visit volume capped at 1000.
func VenueScore(v FoursquareVenue) float64 {
	rating := v.Rating / 10.0

	popularity := float64(v.Stats.TotalCheckIns+v.Stats.TotalVisits) / 1000.0
	if popularity > 1.0 {
		popularity = 1.0
	}

	return rating*0.6 + popularity*0.4
}

// BestVenue returns the highest-scored venue. Ties keep the earlier result,
// which Foursquare already orders by popularity.
func BestVenue(results []FoursquareVenue) (FoursquareVenue, bool) {
	if len(results) == 0 {
		return FoursquareVenue{}, false
	}

	best := results[0]
	bestScore := VenueScore(best)
	for _, v := range results[1:] {
		if s := VenueScore(v); s > bestScore {
			best = v
			bestScore = s
		}
	}
	return best, true
}
