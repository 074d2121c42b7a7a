package response_models

// Thought step kinds as the client renders them.
const (
	StepInfo    = "info"
	StepSuccess = "success"
	StepWarning = "warning"
)

type ThoughtStep struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Venue struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"review_count,omitempty"`
	FsqID       string   `json:"fsq_id"`
}

type Plan struct {
	ID             string        `json:"id"`
	Vibe           string        `json:"vibe"`
	Location       string        `json:"location"`
	ThoughtProcess []ThoughtStep `json:"thought_process"`
	Venues         []Venue       `json:"venues"`
	Itinerary      *string       `json:"itinerary,omitempty"`
	CreatedAt      int64         `json:"created_at"`
}

type Itinerary struct {
	Itinerary string `json:"itinerary"`
}
