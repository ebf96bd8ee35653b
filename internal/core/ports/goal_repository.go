package ports

import (
	"context"

	"github.com/fittrack/goaltracker/internal/core/domain"
)

// GoalRepository defines persistence operations for goals. Every read and
// mutation is filtered by userID so one user can never observe another's
// records; a mismatched owner surfaces as domain.ErrGoalNotFound.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error)
	Update(ctx context.Context, id, userID string, name string, target float64, unit string) (*domain.Goal, error)
	Delete(ctx context.Context, id, userID string) (*domain.Goal, error)
}
