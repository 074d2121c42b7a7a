package venuesfx

import (
	"go.uber.org/fx"

	"vibeout/internal/services"
)

var Module = fx.Provide(
	provideVenueSearch)

func provideVenueSearch() services.VenueSearchService {
	return services.NewFoursquareClient()
}
