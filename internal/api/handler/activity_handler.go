package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/goaltracker/internal/api/middleware"
	"github.com/fittrack/goaltracker/internal/core/ports"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

type activityEntryResponse struct {
	GoalID    string    `json:"goal_id"`
	GoalName  string    `json:"goal_name"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityHandler serves the caller's recent goal activity.
type ActivityHandler struct {
	repo ports.ActivityRepository
}

func NewActivityHandler(repo ports.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

// List handles GET /activity.
//
// @Summary      List recent goal activity
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 20, cap 100)"
// @Success      200    {array}   activityEntryResponse
// @Failure      401    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	limit := defaultActivityLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	entries, err := h.repo.ListByUser(c.Request().Context(), middleware.UserID(c), limit)
	if err != nil {
		return err
	}

	out := make([]activityEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = activityEntryResponse{
			GoalID:    e.GoalID,
			GoalName:  e.GoalName,
			Action:    string(e.Action),
			Timestamp: e.Timestamp.UTC(),
		}
	}
	return c.JSON(http.StatusOK, out)
}
