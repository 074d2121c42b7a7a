package request_models

type VibeRequest struct {
	Vibe     string `json:"vibe"`
	Location string `json:"location"`
}

type ItineraryRequest struct {
	PlanID string `json:"plan_id"`
}
