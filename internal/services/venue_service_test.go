package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchVenues(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"fsq_id":"v1","name":"Washington Square Park","rating":9.2,
			 "location":{"formatted_address":"Washington Square, New York, NY"},
			 "stats":{"total_check_ins":1500,"total_visits":4000}}
		]}`))
	}))
	defer srv.Close()

	c := &FoursquareClient{HTTP: srv.Client(), APIKey: "test-key", BaseURL: srv.URL, Limit: 10}

	results, err := c.SearchVenues(context.Background(), "Park", "New York, NY", 800)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "/v3/places/search", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Park", gotQuery["query"])
	assert.Equal(t, "New York, NY", gotQuery["near"])
	assert.Equal(t, "10", gotQuery["limit"])
	assert.Equal(t, "POPULARITY", gotQuery["sort"])
	assert.Equal(t, "800", gotQuery["radius"])

	v := results[0]
	assert.Equal(t, "v1", v.FsqID)
	assert.Equal(t, "Washington Square Park", v.Name)
	assert.Equal(t, 9.2, v.Rating)
	assert.Equal(t, "Washington Square, New York, NY", v.Location.FormattedAddress)
	assert.Equal(t, 1500, v.Stats.TotalCheckIns)
	assert.Equal(t, 4000, v.Stats.TotalVisits)
}

func TestSearchVenuesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &FoursquareClient{HTTP: srv.Client(), APIKey: "test-key", BaseURL: srv.URL}

	_, err := c.SearchVenues(context.Background(), "Cafe", "New York, NY", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad status")
}

func TestVenueScore(t *testing.T) {
	perfect := FoursquareVenue{Rating: 10}
	perfect.Stats.TotalCheckIns = 600
	perfect.Stats.TotalVisits = 400
	assert.InDelta(t, 1.0, VenueScore(perfect), 1e-9)

	assert.Zero(t, VenueScore(FoursquareVenue{}))

	// Popularity is capped at 1000 combined check-ins and visits.
	crowded := FoursquareVenue{}
	crowded.Stats.TotalCheckIns = 50000
	assert.InDelta(t, 0.4, VenueScore(crowded), 1e-9)

	ratedOnly := FoursquareVenue{Rating: 8}
	assert.InDelta(t, 0.48, VenueScore(ratedOnly), 1e-9)
}

func TestBestVenue(t *testing.T) {
	_, ok := BestVenue(nil)
	assert.False(t, ok)

	loved := FoursquareVenue{FsqID: "loved", Rating: 8}
	loved.Stats.TotalCheckIns = 2000
	niche := FoursquareVenue{FsqID: "niche", Rating: 9}
	niche.Stats.TotalCheckIns = 100

	best, ok := BestVenue([]FoursquareVenue{niche, loved})
	require.True(t, ok)
	assert.Equal(t, "loved", best.FsqID)
}
