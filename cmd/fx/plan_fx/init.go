package planfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibeout/internal/api/controllers"
	"vibeout/internal/repositories"
	"vibeout/internal/services"
	"vibeout/pkg/utils"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService, providePlanController)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(
	planRepo repositories.IPlanRepository,
	aiClient utils.GenerativeClientInterface,
	venueSearch services.VenueSearchService,
) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, aiClient, venueSearch)
}

func providePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}
