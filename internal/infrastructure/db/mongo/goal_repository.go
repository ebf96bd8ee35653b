package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fittrack/goaltracker/internal/core/domain"
)

const goalsCollection = "goals"

// GoalRepository persists goals. Every query includes the owner's user id,
// so a goal belonging to someone else is indistinguishable from one that
// does not exist.
type GoalRepository struct {
	coll *mongo.Collection
}

func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{coll: db.Collection(goalsCollection)}
}

type mongoGoal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Target    float64            `bson:"target"`
	Unit      string             `bson:"unit"`
	UserID    string             `bson:"user_id"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (g mongoGoal) toDomain() *domain.Goal {
	return &domain.Goal{
		ID:        g.ID.Hex(),
		Name:      g.Name,
		Target:    g.Target,
		Unit:      g.Unit,
		UserID:    g.UserID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoGoal{
		Name:      goal.Name,
		Target:    goal.Target,
		Unit:      goal.Unit,
		UserID:    goal.UserID,
		CreatedAt: goal.CreatedAt,
		UpdatedAt: goal.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	created := *goal
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer cur.Close(ctx)

	goals := make([]*domain.Goal, 0)
	for cur.Next(ctx) {
		var mg mongoGoal
		if err := cur.Decode(&mg); err != nil {
			return nil, fmt.Errorf("decode goal: %w", err)
		}
		goals = append(goals, mg.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (r *GoalRepository) Update(ctx context.Context, id, userID string, name string, target float64, unit string) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not a well-formed object id: no document can ever match it.
		return nil, domain.ErrGoalNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":       name,
		"target":     target,
		"unit":       unit,
		"updated_at": time.Now().UTC(),
	}}

	var mg mongoGoal
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return mg.toDomain(), nil
}

func (r *GoalRepository) Delete(ctx context.Context, id, userID string) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGoalNotFound
	}

	var mg mongoGoal
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&mg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("delete goal: %w", err)
	}
	return mg.toDomain(), nil
}

// EnsureIndexes creates the owner index used by every goal query.
func (r *GoalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
