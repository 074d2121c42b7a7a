package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"vibeout/internal/models/response_models"
)

// State tracks where a session is in the planning cycle.
type State int

const (
	StateIdle State = iota
	StatePlanning
	StatePlanReady
	StatePlanFailed
	StateItineraryPending
	StateItineraryReady
	StateItineraryFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlanning:
		return "planning"
	case StatePlanReady:
		return "plan_ready"
	case StatePlanFailed:
		return "plan_failed"
	case StateItineraryPending:
		return "itinerary_pending"
	case StateItineraryReady:
		return "itinerary_ready"
	case StateItineraryFailed:
		return "itinerary_failed"
	}
	return "unknown"
}

// DefaultRevealDelay is the spacing between revealed thought steps.
const DefaultRevealDelay = 800 * time.Millisecond

// ErrPlanningInFlight blocks a second submission while one is running.
var ErrPlanningInFlight = errors.New("a planning request is already in flight")

var planFailedStep = response_models.ThoughtStep{
	Type:    response_models.StepWarning,
	Message: "Sorry, something went wrong while planning your outing. Please try again.",
}

// Session is the single piece of client state: the current plan, the steps
// revealed so far, and the itinerary once fetched. The step reveal runs on
// its own goroutine so the rest of the interface stays responsive, but steps
// are always appended one at a time, in order, RevealDelay apart.
//
// RevealDelay, OnStep and OnVenues are configuration; set them before the
// first SubmitVibe. Callbacks fire off the calling goroutine.
type Session struct {
	client      *PlanningClient
	RevealDelay time.Duration

	OnStep   func(response_models.ThoughtStep)
	OnVenues func([]response_models.Venue)

	mu         sync.Mutex
	state      State
	generation int
	plan       *response_models.Plan
	revealed   []response_models.ThoughtStep
	itinerary  []string
	revealDone chan struct{}
}

func NewSession(c *PlanningClient) *Session {
	done := make(chan struct{})
	close(done)
	return &Session{
		client:      c,
		RevealDelay: DefaultRevealDelay,
		state:       StateIdle,
		revealDone:  done,
	}
}

// SubmitVibe starts one planning cycle. Empty inputs are rejected before any
// network call. A remote failure is not an error to the caller: the session
// moves to StatePlanFailed showing exactly one warning step and no venues.
func (s *Session) SubmitVibe(ctx context.Context, vibe, location string) error {
	if strings.TrimSpace(vibe) == "" || strings.TrimSpace(location) == "" {
		return ErrMissingInput
	}

	s.mu.Lock()
	if s.state == StatePlanning {
		s.mu.Unlock()
		return ErrPlanningInFlight
	}
	// Supersede any reveal still running from the previous cycle.
	s.generation++
	gen := s.generation
	s.state = StatePlanning
	s.plan = nil
	s.revealed = nil
	s.itinerary = nil
	done := make(chan struct{})
	s.revealDone = done
	s.mu.Unlock()

	plan, err := s.client.RequestPlan(ctx, vibe, location)
	if err != nil {
		s.mu.Lock()
		current := s.generation == gen
		if current {
			s.state = StatePlanFailed
			s.revealed = []response_models.ThoughtStep{planFailedStep}
		}
		cb := s.OnStep
		s.mu.Unlock()
		if current && cb != nil {
			cb(planFailedStep)
		}
		close(done)
		return nil
	}

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		close(done)
		return nil
	}
	s.plan = plan
	s.state = StatePlanReady
	s.mu.Unlock()

	go s.reveal(gen, plan.ThoughtProcess, plan.Venues, done)
	return nil
}

// reveal replays the thought steps one at a time, then hands over the
// venues. A newer generation stops it silently.
func (s *Session) reveal(gen int, steps []response_models.ThoughtStep, venues []response_models.Venue, done chan struct{}) {
	defer close(done)

	for i, step := range steps {
		if i > 0 {
			time.Sleep(s.RevealDelay)
		}

		s.mu.Lock()
		if s.generation != gen {
			s.mu.Unlock()
			return
		}
		s.revealed = append(s.revealed, step)
		cb := s.OnStep
		s.mu.Unlock()

		if cb != nil {
			cb(step)
		}
	}

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return
	}
	cb := s.OnVenues
	s.mu.Unlock()

	if cb != nil {
		cb(venues)
	}
}

// WaitReveal blocks until the current reveal sequence has finished.
func (s *Session) WaitReveal() {
	s.mu.Lock()
	done := s.revealDone
	s.mu.Unlock()
	<-done
}

// FetchItinerary asks the service for the narrative belonging to the current
// plan. Failure is surfaced to the caller, but the narrative simply stays
// absent; the plan itself is untouched.
func (s *Session) FetchItinerary(ctx context.Context) error {
	s.mu.Lock()
	if s.plan == nil || strings.TrimSpace(s.plan.ID) == "" {
		s.mu.Unlock()
		return ErrNoPlan
	}
	planID := s.plan.ID
	gen := s.generation
	s.state = StateItineraryPending
	s.mu.Unlock()

	text, err := s.client.RequestItinerary(ctx, planID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return nil
	}
	if err != nil {
		s.state = StateItineraryFailed
		return err
	}
	s.itinerary = SplitParagraphs(text)
	s.state = StateItineraryReady
	return nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Plan() *response_models.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

// RevealedSteps returns the steps shown so far, in reveal order.
func (s *Session) RevealedSteps() []response_models.ThoughtStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]response_models.ThoughtStep, len(s.revealed))
	copy(out, s.revealed)
	return out
}

// Itinerary returns the fetched narrative paragraphs, empty until ready.
func (s *Session) Itinerary() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.itinerary))
	copy(out, s.itinerary)
	return out
}
