package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"vibeout/internal/models/db_models"
	"vibeout/internal/models/response_models"
	"vibeout/internal/repositories"
	"vibeout/pkg/utils"
)

// searchRadii widens the venue search until something comes back.
var searchRadii = []int{800, 1600, 3200}

const listPlansLimit = 100

type PlanServiceInterface interface {
	PlanVibe(ctx context.Context, vibe, location string) (response_models.Plan, error)
	GenerateItinerary(ctx context.Context, planID string) (string, error)
	ListPlans(ctx context.Context) ([]response_models.Plan, error)
}

type PlanService struct {
	planRepo    repositories.IPlanRepository
	aiClient    utils.GenerativeClientInterface
	venueSearch VenueSearchService
}

func NewPlanService(
	planRepo repositories.IPlanRepository,
	aiClient utils.GenerativeClientInterface,
	venueSearch VenueSearchService,
) PlanServiceInterface {
	return &PlanService{
		planRepo:    planRepo,
		aiClient:    aiClient,
		venueSearch: venueSearch,
	}
}

// PlanVibe walks the vibe through interpretation and venue selection,
// narrating each move as a thought step. It never returns an error for a
// degraded plan: when the AI provider is down the caller still gets the
// canned fallback plan with a warning step.
func (s *PlanService) PlanVibe(ctx context.Context, vibe, location string) (response_models.Plan, error) {
	steps := []response_models.ThoughtStep{{
		Type:    response_models.StepInfo,
		Message: fmt.Sprintf("Interpreting vibe: %q for %s.", vibe, location),
	}}

	first, second, err := s.aiClient.InterpretVibe(ctx, vibe, location)
	if err != nil {
		log.Printf("Error interpreting vibe: %v", err)
		return s.fallbackPlan(ctx, vibe, location, steps)
	}

	steps = append(steps, response_models.ThoughtStep{
		Type:    response_models.StepSuccess,
		Message: fmt.Sprintf("Vibe translated to: %q then %q.", first, second),
	})

	var venues []response_models.Venue
	for _, category := range []string{first, second} {
		steps = append(steps, response_models.ThoughtStep{
			Type:    response_models.StepInfo,
			Message: fmt.Sprintf("Searching for best %q...", category),
		})

		var found []FoursquareVenue
		for _, radius := range searchRadii {
			results, searchErr := s.venueSearch.SearchVenues(ctx, category, location, radius)
			if searchErr != nil {
				log.Printf("Venue search error for %q: %v", category, searchErr)
			}
			if len(results) > 0 {
				found = results
				break
			}
			steps = append(steps, response_models.ThoughtStep{
				Type:    response_models.StepWarning,
				Message: fmt.Sprintf("No results found within %dm.", radius),
			})
		}

		if best, ok := BestVenue(found); ok {
			venue := response_models.Venue{
				Name:     best.Name,
				Category: category,
				Address:  best.Location.FormattedAddress,
				FsqID:    best.FsqID,
			}
			if best.Rating > 0 {
				// Foursquare rates on 0-10; venues render on a 5-point scale.
				r := best.Rating / 2.0
				venue.Rating = &r
			}
			reviews := best.Stats.TotalCheckIns
			venue.ReviewCount = &reviews

			venues = append(venues, venue)
			steps = append(steps, response_models.ThoughtStep{
				Type:    response_models.StepSuccess,
				Message: fmt.Sprintf("Found %q!", best.Name),
			})
		} else {
			venues = append(venues, localFallbackVenue(category, location))
			steps = append(steps, response_models.ThoughtStep{
				Type:    response_models.StepSuccess,
				Message: fmt.Sprintf("Found local %s option!", category),
			})
		}
	}

	steps = append(steps, response_models.ThoughtStep{
		Type:    response_models.StepSuccess,
		Message: "Plan generated successfully!",
	})

	return s.persistPlan(ctx, vibe, location, []string{first, second}, steps, venues)
}

func (s *PlanService) GenerateItinerary(ctx context.Context, planID string) (string, error) {
	record, err := s.planRepo.GetPlanById(ctx, planID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if record == nil {
		return "", utils.ErrPlanNotFound
	}

	var venues []response_models.Venue
	if err := json.Unmarshal(record.Venues, &venues); err != nil {
		return "", fmt.Errorf("decode stored venues: %w", err)
	}

	text, err := s.aiClient.ComposeItinerary(ctx, record.Vibe, record.Location, venues)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
	}

	if err := s.planRepo.SetItinerary(ctx, planID, text); err != nil {
		// Itinerary was generated; losing the write-back only costs a regeneration.
		log.Printf("Error storing itinerary for plan %s: %v", planID, err)
	}

	return text, nil
}

func (s *PlanService) ListPlans(ctx context.Context) ([]response_models.Plan, error) {
	records, err := s.planRepo.GetAllPlans(ctx, listPlansLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	plans := make([]response_models.Plan, 0, len(records))
	for _, record := range records {
		plan, convErr := toResponsePlan(record)
		if convErr != nil {
			log.Printf("Skipping undecodable plan %s: %v", record.ID, convErr)
			continue
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

// fallbackPlan is the catch-all answer when interpretation fails: a warning
// step plus two canned venues, still persisted so an itinerary can follow.
func (s *PlanService) fallbackPlan(ctx context.Context, vibe, location string, steps []response_models.ThoughtStep) (response_models.Plan, error) {
	steps = append(steps, response_models.ThoughtStep{
		Type:    response_models.StepWarning,
		Message: "Something went wrong, but we found you some great options!",
	})

	parkRating, parkReviews := 4.5, 1200
	cafeRating, cafeReviews := 4.3, 800
	venues := []response_models.Venue{
		{
			Name:        "Beautiful Local Park",
			Category:    "Park",
			Address:     "Near " + location,
			Rating:      &parkRating,
			ReviewCount: &parkReviews,
			FsqID:       "fallback1",
		},
		{
			Name:        "Cozy Corner Cafe",
			Category:    "Cafe",
			Address:     "Downtown " + location,
			Rating:      &cafeRating,
			ReviewCount: &cafeReviews,
			FsqID:       "fallback2",
		},
	}

	return s.persistPlan(ctx, vibe, location, []string{"Park", "Cafe"}, steps, venues)
}

func localFallbackVenue(category, location string) response_models.Venue {
	rating := 4.2
	reviews := 150
	return response_models.Venue{
		Name:        "Local " + category,
		Category:    category,
		Address:     "Near " + location,
		Rating:      &rating,
		ReviewCount: &reviews,
		FsqID:       "fallback",
	}
}

func (s *PlanService) persistPlan(
	ctx context.Context,
	vibe, location string,
	categories []string,
	steps []response_models.ThoughtStep,
	venues []response_models.Venue,
) (response_models.Plan, error) {

	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return response_models.Plan{}, fmt.Errorf("encode thought process: %w", err)
	}
	venuesJSON, err := json.Marshal(venues)
	if err != nil {
		return response_models.Plan{}, fmt.Errorf("encode venues: %w", err)
	}

	record := &db_models.Plan{
		Vibe:           vibe,
		Location:       location,
		Categories:     pq.StringArray(categories),
		ThoughtProcess: datatypes.JSON(stepsJSON),
		Venues:         datatypes.JSON(venuesJSON),
	}
	record.ID = uuid.New()

	if err := s.planRepo.InsertPlan(ctx, record); err != nil {
		// The plan is still usable for this session; only the itinerary
		// lookup later would miss it.
		log.Printf("Error persisting plan %s: %v", record.ID, err)
	}

	return response_models.Plan{
		ID:             record.ID.String(),
		Vibe:           vibe,
		Location:       location,
		ThoughtProcess: steps,
		Venues:         venues,
		CreatedAt:      record.CreatedAt,
	}, nil
}

func toResponsePlan(record db_models.Plan) (response_models.Plan, error) {
	var steps []response_models.ThoughtStep
	if err := json.Unmarshal(record.ThoughtProcess, &steps); err != nil {
		return response_models.Plan{}, fmt.Errorf("decode thought process: %w", err)
	}

	var venues []response_models.Venue
	if err := json.Unmarshal(record.Venues, &venues); err != nil {
		return response_models.Plan{}, fmt.Errorf("decode venues: %w", err)
	}

	return response_models.Plan{
		ID:             record.ID.String(),
		Vibe:           record.Vibe,
		Location:       record.Location,
		ThoughtProcess: steps,
		Venues:         venues,
		Itinerary:      record.Itinerary,
		CreatedAt:      record.CreatedAt,
	}, nil
}
