package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/goaltracker/internal/api/metrics"
	"github.com/fittrack/goaltracker/internal/api/middleware"
	"github.com/fittrack/goaltracker/internal/core/domain"
	"github.com/fittrack/goaltracker/internal/core/ports"
)

// GoalHandler handles HTTP requests for goal CRUD. All routes sit behind the
// auth gate; the user id always comes from the verified token, never from the
// request payload.
type GoalHandler struct {
	service ports.GoalService
}

func NewGoalHandler(service ports.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

func toGoalResponse(g *domain.Goal) goalResponse {
	return goalResponse{
		ID:        g.ID,
		Name:      g.Name,
		Target:    g.Target,
		Unit:      g.Unit,
		UserID:    g.UserID,
		CreatedAt: g.CreatedAt.UTC(),
		UpdatedAt: g.UpdatedAt.UTC(),
	}
}

// List handles GET /goals.
//
// @Summary      List the caller's goals
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   goalResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /goals [get]
func (h *GoalHandler) List(c echo.Context) error {
	goals, err := h.service.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	out := make([]goalResponse, len(goals))
	for i, g := range goals {
		out[i] = toGoalResponse(g)
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /goals.
//
// @Summary      Create a goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      goalRequest  true  "Goal details"
// @Success      201   {object}  goalResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /goals [post]
func (h *GoalHandler) Create(c echo.Context) error {
	var req goalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	goal, err := h.service.Create(c.Request().Context(), middleware.UserID(c), ports.GoalInput{
		Name:   req.Name,
		Target: req.Target,
		Unit:   req.Unit,
	})
	if err != nil {
		return err
	}

	metrics.GoalOperationsTotal.WithLabelValues(string(domain.ActivityCreated)).Inc()
	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// Update handles PUT /goals/:id.
//
// @Summary      Update a goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Goal id"
// @Param        body  body      goalRequest  true  "New goal details"
// @Success      200   {object}  goalResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /goals/{id} [put]
func (h *GoalHandler) Update(c echo.Context) error {
	var req goalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	goal, err := h.service.Update(c.Request().Context(), middleware.UserID(c), c.Param("id"), ports.GoalInput{
		Name:   req.Name,
		Target: req.Target,
		Unit:   req.Unit,
	})
	if err != nil {
		return err
	}

	metrics.GoalOperationsTotal.WithLabelValues(string(domain.ActivityUpdated)).Inc()
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// Delete handles DELETE /goals/:id.
//
// @Summary      Delete a goal
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Goal id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /goals/{id} [delete]
func (h *GoalHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return err
	}

	metrics.GoalOperationsTotal.WithLabelValues(string(domain.ActivityDeleted)).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Goal deleted successfully"})
}
