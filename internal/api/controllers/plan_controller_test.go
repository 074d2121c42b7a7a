package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibeout/internal/models/response_models"
	"vibeout/pkg/utils"
)

type fakePlanService struct {
	plan         response_models.Plan
	planErr      error
	itinerary    string
	itineraryErr error
	plans        []response_models.Plan
	lastVibe     string
	lastLocation string
	lastPlanID   string
}

func (f *fakePlanService) PlanVibe(ctx context.Context, vibe, location string) (response_models.Plan, error) {
	f.lastVibe, f.lastLocation = vibe, location
	return f.plan, f.planErr
}

func (f *fakePlanService) GenerateItinerary(ctx context.Context, planID string) (string, error) {
	f.lastPlanID = planID
	return f.itinerary, f.itineraryErr
}

func (f *fakePlanService) ListPlans(ctx context.Context) ([]response_models.Plan, error) {
	return f.plans, nil
}

func newTestRouter(svc *fakePlanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewPlanController(svc)
	api := r.Group("/api")
	api.POST("/plan-vibe", ctrl.PlanVibe)
	api.POST("/generate-itinerary", ctrl.GenerateItinerary)
	api.GET("/plans", ctrl.ListPlans)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlanVibeRejectsBlankInput(t *testing.T) {
	svc := &fakePlanService{}
	r := newTestRouter(svc)

	for _, body := range []string{
		`{}`,
		`{"vibe": "  ", "location": "New York, NY"}`,
		`{"vibe": "cozy", "location": ""}`,
		`not json`,
	} {
		w := doJSON(r, http.MethodPost, "/api/plan-vibe", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
	assert.Empty(t, svc.lastVibe, "service must not be called for invalid input")
}

func TestPlanVibeReturnsRawPlan(t *testing.T) {
	rating := 4.7
	svc := &fakePlanService{plan: response_models.Plan{
		ID:   "abc123",
		Vibe: "cozy cultural afternoon",
		ThoughtProcess: []response_models.ThoughtStep{
			{Type: response_models.StepInfo, Message: "Interpreting..."},
		},
		Venues: []response_models.Venue{
			{Name: "The Met", Category: "Museum", Address: "1000 5th Ave", Rating: &rating, FsqID: "met"},
		},
	}}
	r := newTestRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/plan-vibe", `{"vibe": " cozy cultural afternoon ", "location": "New York, NY"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// The contract body is the plan itself, not the success envelope.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "status")
	assert.Contains(t, raw, "thought_process")

	var plan response_models.Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, "abc123", plan.ID)
	require.Len(t, plan.Venues, 1)
	assert.Equal(t, "The Met", plan.Venues[0].Name)

	assert.Equal(t, "cozy cultural afternoon", svc.lastVibe, "inputs are trimmed before the service sees them")
}

func TestGenerateItinerary(t *testing.T) {
	svc := &fakePlanService{itinerary: "Para one.\n\nPara two."}
	r := newTestRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/generate-itinerary", `{"plan_id": "abc123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out response_models.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Para one.\n\nPara two.", out.Itinerary)
	assert.Equal(t, "abc123", svc.lastPlanID)
}

func TestGenerateItineraryUnknownPlan(t *testing.T) {
	svc := &fakePlanService{itineraryErr: utils.ErrPlanNotFound}
	r := newTestRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/generate-itinerary", `{"plan_id": "nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateItineraryRequiresPlanID(t *testing.T) {
	svc := &fakePlanService{}
	r := newTestRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/generate-itinerary", `{"plan_id": "  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.lastPlanID)
}

func TestListPlansEnvelope(t *testing.T) {
	svc := &fakePlanService{plans: []response_models.Plan{{ID: "p1"}, {ID: "p2"}}}
	r := newTestRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/plans", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Status string                 `json:"status"`
		Data   []response_models.Plan `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "p1", envelope.Data[0].ID)
}
