package domain

import "time"

// ActivityAction identifies what happened to a goal.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
)

// GoalActivity is one entry in a user's activity trail. Entries are written
// asynchronously after the goal mutation commits; losing one is tolerable.
type GoalActivity struct {
	UserID    string         `json:"user_id"`
	GoalID    string         `json:"goal_id"`
	GoalName  string         `json:"goal_name"`
	Action    ActivityAction `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
}
