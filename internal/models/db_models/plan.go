package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Plan is one answered vibe request: the two resolved categories,
// the replayable thought process and the picked venues, plus the
// itinerary once it has been generated.
type Plan struct {
	BaseModel
	Vibe           string
	Location       string
	Categories     pq.StringArray `gorm:"type:text[]"`
	ThoughtProcess datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Venues         datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Itinerary      *string
}
