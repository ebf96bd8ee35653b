package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/goaltracker/internal/core/domain"
	"github.com/fittrack/goaltracker/internal/core/ports"
)

// GoalService implements goal CRUD scoped to the owning user. Activity events
// are emitted after the write commits; recording is best-effort.
type GoalService struct {
	repo     ports.GoalRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewGoalService(repo ports.GoalRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *GoalService {
	return &GoalService{repo: repo, activity: activity, logger: logger}
}

func (s *GoalService) Create(ctx context.Context, userID string, in ports.GoalInput) (*domain.Goal, error) {
	in, err := normalizeGoalInput(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	goal := &domain.Goal{
		Name:      in.Name,
		Target:    in.Target,
		Unit:      in.Unit,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, goal)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create goal")
		return nil, err
	}

	s.record(created, domain.ActivityCreated)
	return created, nil
}

func (s *GoalService) List(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *GoalService) Update(ctx context.Context, userID, goalID string, in ports.GoalInput) (*domain.Goal, error) {
	in, err := normalizeGoalInput(in)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, goalID, userID, in.Name, in.Target, in.Unit)
	if err != nil {
		return nil, err
	}

	s.record(updated, domain.ActivityUpdated)
	return updated, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	deleted, err := s.repo.Delete(ctx, goalID, userID)
	if err != nil {
		return err
	}

	s.record(deleted, domain.ActivityDeleted)
	return nil
}

func (s *GoalService) record(goal *domain.Goal, action domain.ActivityAction) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(ports.ActivityInput{
		UserID:    goal.UserID,
		GoalID:    goal.ID,
		GoalName:  goal.Name,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}

func normalizeGoalInput(in ports.GoalInput) (ports.GoalInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Unit = strings.TrimSpace(in.Unit)
	if in.Name == "" || in.Unit == "" || in.Target <= 0 {
		return in, domain.ErrValidation
	}
	return in, nil
}
