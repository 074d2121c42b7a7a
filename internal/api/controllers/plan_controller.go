package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vibeout/internal/models/request_models"
	"vibeout/internal/services"
	"vibeout/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// PlanVibe godoc
// @Summary Plan a two-stop outing from a vibe
// @Description Interpret a free-text vibe for a location and return reasoning steps plus two venues
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.VibeRequest true "Vibe and location"
// @Success 200 {object} response_models.Plan
// @Failure 400 {object} utils.APIResponse
// @Router /api/plan-vibe [post]
func (p *PlanController) PlanVibe(c *gin.Context) {
	var req request_models.VibeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Vibe and location are required")
		return
	}

	vibe := strings.TrimSpace(req.Vibe)
	location := strings.TrimSpace(req.Location)
	if vibe == "" || location == "" {
		utils.RespondError(c, http.StatusBadRequest, "Vibe and location are required")
		return
	}

	plan, err := p.planService.PlanVibe(c.Request.Context(), vibe, location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// Raw contract body, not the envelope: the client consumes the plan as-is.
	c.JSON(http.StatusOK, plan)
}

// GenerateItinerary godoc
// @Summary Generate the narrative itinerary for a plan
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Plan ID"
// @Success 200 {object} response_models.Itinerary
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/generate-itinerary [post]
func (p *PlanController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.PlanID) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	itinerary, err := p.planService.GenerateItinerary(c.Request.Context(), strings.TrimSpace(req.PlanID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"itinerary": itinerary})
}

// ListPlans godoc
// @Summary List stored plans
// @Tags Plan
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {
	plans, err := p.planService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}
