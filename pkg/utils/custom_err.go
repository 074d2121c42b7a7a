package utils

import "errors"

var (
	ErrPlanNotFound  = errors.New("plan not found")
	ErrAIUnavailable = errors.New("ai service unavailable")
	ErrDatabaseError = errors.New("database error")
)
