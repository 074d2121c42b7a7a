package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vibeout/internal/models/request_models"
	"vibeout/internal/models/response_models"
)

var (
	// ErrMissingInput rejects a submission locally, before any network call.
	ErrMissingInput = errors.New("vibe and location are required")
	// ErrNoPlan means an itinerary was requested without a plan to key it on.
	ErrNoPlan = errors.New("no plan with a valid id")
)

// PlanningClient talks to the planning service. BaseURL comes from the
// environment (VIBEOUT_API_URL); the transport is injectable for tests.
type PlanningClient struct {
	HTTP    *http.Client
	BaseURL string
}

func New(baseURL string) *PlanningClient {
	return &PlanningClient{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *PlanningClient) RequestPlan(ctx context.Context, vibe, location string) (*response_models.Plan, error) {
	vibe = strings.TrimSpace(vibe)
	location = strings.TrimSpace(location)
	if vibe == "" || location == "" {
		return nil, ErrMissingInput
	}

	var plan response_models.Plan
	if err := c.post(ctx, "/api/plan-vibe", request_models.VibeRequest{Vibe: vibe, Location: location}, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *PlanningClient) RequestItinerary(ctx context.Context, planID string) (string, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return "", ErrNoPlan
	}

	var out response_models.Itinerary
	if err := c.post(ctx, "/api/generate-itinerary", request_models.ItineraryRequest{PlanID: planID}, &out); err != nil {
		return "", err
	}
	return out.Itinerary, nil
}

func (c *PlanningClient) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("planning service request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("planning service http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("planning service bad status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("planning service decode: %w", err)
	}
	return nil
}

// SplitParagraphs breaks a narrative on line breaks, suppressing paragraphs
// that are empty or whitespace-only.
func SplitParagraphs(narrative string) []string {
	var paragraphs []string
	for _, line := range strings.Split(narrative, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// DisplayRating renders a venue rating, defaulting to "4.2" when the field
// is absent or zero.
func DisplayRating(v response_models.Venue) string {
	if v.Rating == nil || *v.Rating == 0 {
		return "4.2"
	}
	return strconv.FormatFloat(*v.Rating, 'f', 1, 64)
}

// DisplayReviewCount renders a venue review count, defaulting to "1,000"
// when the field is absent or zero.
func DisplayReviewCount(v response_models.Venue) string {
	if v.ReviewCount == nil || *v.ReviewCount == 0 {
		return "1,000"
	}
	return groupThousands(*v.ReviewCount)
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return s
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
