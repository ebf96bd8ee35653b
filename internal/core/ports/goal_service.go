package ports

import (
	"context"

	"github.com/fittrack/goaltracker/internal/core/domain"
)

// GoalInput carries the mutable fields of a goal.
type GoalInput struct {
	Name   string
	Target float64
	Unit   string
}

type GoalService interface {
	Create(ctx context.Context, userID string, in GoalInput) (*domain.Goal, error)
	List(ctx context.Context, userID string) ([]*domain.Goal, error)
	Update(ctx context.Context, userID, goalID string, in GoalInput) (*domain.Goal, error)
	Delete(ctx context.Context, userID, goalID string) error
}
