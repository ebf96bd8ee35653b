package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/goaltracker/internal/core/domain"
	"github.com/fittrack/goaltracker/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubGoalRepo struct {
	goals  map[string]*domain.Goal
	nextID int
}

func newStubGoalRepo() *stubGoalRepo {
	return &stubGoalRepo{goals: make(map[string]*domain.Goal)}
}

func (r *stubGoalRepo) Create(_ context.Context, goal *domain.Goal) (*domain.Goal, error) {
	r.nextID++
	clone := *goal
	clone.ID = "goal-" + strconv.Itoa(r.nextID)
	r.goals[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubGoalRepo) ListByUser(_ context.Context, userID string) ([]*domain.Goal, error) {
	var out []*domain.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			clone := *g
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubGoalRepo) Update(_ context.Context, id, userID string, name string, target float64, unit string) (*domain.Goal, error) {
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return nil, domain.ErrGoalNotFound
	}
	g.Name, g.Target, g.Unit = name, target, unit
	g.UpdatedAt = time.Now().UTC()
	clone := *g
	return &clone, nil
}

func (r *stubGoalRepo) Delete(_ context.Context, id, userID string) (*domain.Goal, error) {
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return nil, domain.ErrGoalNotFound
	}
	delete(r.goals, id)
	return g, nil
}

type stubRecorder struct {
	events []ports.ActivityInput
}

func (r *stubRecorder) Enqueue(event ports.ActivityInput) {
	r.events = append(r.events, event)
}

// ---------------------------------------------------------------------------

func TestGoalService_Create(t *testing.T) {
	repo := newStubGoalRepo()
	rec := &stubRecorder{}
	svc := NewGoalService(repo, rec, zerolog.Nop())

	goal, err := svc.Create(context.Background(), "user-1", ports.GoalInput{Name: " Run ", Target: 42, Unit: " km "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if goal.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if goal.Name != "Run" || goal.Unit != "km" {
		t.Fatalf("expected trimmed fields, got %q %q", goal.Name, goal.Unit)
	}
	if goal.UserID != "user-1" {
		t.Fatalf("goal not scoped to caller: %q", goal.UserID)
	}

	if len(rec.events) != 1 || rec.events[0].Action != domain.ActivityCreated {
		t.Fatalf("expected one created activity event, got %+v", rec.events)
	}
}

func TestGoalService_Create_Validation(t *testing.T) {
	svc := NewGoalService(newStubGoalRepo(), &stubRecorder{}, zerolog.Nop())

	cases := []ports.GoalInput{
		{Name: "", Target: 10, Unit: "km"},
		{Name: "  ", Target: 10, Unit: "km"},
		{Name: "Run", Target: 0, Unit: "km"},
		{Name: "Run", Target: -5, Unit: "km"},
		{Name: "Run", Target: 10, Unit: ""},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), "user-1", in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Create(%+v): expected ErrValidation, got %v", in, err)
		}
	}
}

func TestGoalService_List_ScopedToUser(t *testing.T) {
	repo := newStubGoalRepo()
	svc := NewGoalService(repo, &stubRecorder{}, zerolog.Nop())

	_, _ = svc.Create(context.Background(), "user-1", ports.GoalInput{Name: "Run", Target: 42, Unit: "km"})
	_, _ = svc.Create(context.Background(), "user-2", ports.GoalInput{Name: "Swim", Target: 5, Unit: "km"})

	goals, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(goals) != 1 || goals[0].Name != "Run" {
		t.Fatalf("expected only user-1 goals, got %+v", goals)
	}
}

func TestGoalService_Update(t *testing.T) {
	repo := newStubGoalRepo()
	rec := &stubRecorder{}
	svc := NewGoalService(repo, rec, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "user-1", ports.GoalInput{Name: "Run", Target: 42, Unit: "km"})

	updated, err := svc.Update(context.Background(), "user-1", created.ID, ports.GoalInput{Name: "Run far", Target: 50, Unit: "km"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Run far" || updated.Target != 50 {
		t.Fatalf("update not applied: %+v", updated)
	}

	// Another user must not be able to touch the goal.
	if _, err := svc.Update(context.Background(), "user-2", created.ID, ports.GoalInput{Name: "X", Target: 1, Unit: "km"}); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound for foreign goal, got %v", err)
	}

	if _, err := svc.Update(context.Background(), "user-1", "missing", ports.GoalInput{Name: "X", Target: 1, Unit: "km"}); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound for missing goal, got %v", err)
	}
}

func TestGoalService_Delete(t *testing.T) {
	repo := newStubGoalRepo()
	rec := &stubRecorder{}
	svc := NewGoalService(repo, rec, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "user-1", ports.GoalInput{Name: "Run", Target: 42, Unit: "km"})

	if err := svc.Delete(context.Background(), "user-2", created.ID); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound for foreign delete, got %v", err)
	}

	if err := svc.Delete(context.Background(), "user-1", created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), "user-1", created.ID); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound on second delete, got %v", err)
	}

	last := rec.events[len(rec.events)-1]
	if last.Action != domain.ActivityDeleted || last.GoalID != created.ID {
		t.Fatalf("expected deleted activity event, got %+v", last)
	}
}
