package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fittrack/goaltracker/internal/core/domain"
	"github.com/fittrack/goaltracker/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists one activity
// entry per processed event.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	entry := &domain.GoalActivity{
		UserID:    in.UserID,
		GoalID:    in.GoalID,
		GoalName:  in.GoalName,
		Action:    in.Action,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	s.log.Debug().
		Str("user_id", in.UserID).
		Str("goal_id", in.GoalID).
		Str("action", string(in.Action)).
		Msg("activity recorded")

	return nil
}
