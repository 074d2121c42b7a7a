package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vibeout/internal/models/db_models"
)

type IPlanRepository interface {
	InsertPlan(ctx context.Context, plan *db_models.Plan) error
	GetPlanById(ctx context.Context, planID string) (*db_models.Plan, error)
	SetItinerary(ctx context.Context, planID string, itinerary string) error
	GetAllPlans(ctx context.Context, limit int) ([]db_models.Plan, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p PlanRepository) InsertPlan(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p PlanRepository) GetPlanById(ctx context.Context, planID string) (*db_models.Plan, error) {

	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p PlanRepository) SetItinerary(ctx context.Context, planID string, itinerary string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Where("id = ?", planID).
		Update("itinerary", itinerary).Error
}

func (p PlanRepository) GetAllPlans(ctx context.Context, limit int) ([]db_models.Plan, error) {

	var plans []db_models.Plan
	err := p.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}
