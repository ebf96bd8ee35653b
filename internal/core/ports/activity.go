package ports

import (
	"context"
	"time"

	"github.com/fittrack/goaltracker/internal/core/domain"
)

// ActivityInput is the event emitted after a goal mutation commits.
type ActivityInput struct {
	UserID    string
	GoalID    string
	GoalName  string
	Action    domain.ActivityAction
	Timestamp time.Time
}

// ActivityRecorder accepts events for asynchronous processing. Enqueue must
// not block the request path beyond channel capacity.
type ActivityRecorder interface {
	Enqueue(event ActivityInput)
}

// ActivityService persists a single activity event.
type ActivityService interface {
	Process(ctx context.Context, in ActivityInput) error
}

// ActivityRepository defines persistence for the activity trail.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.GoalActivity) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.GoalActivity, error)
}
