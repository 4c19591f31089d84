package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/internal/domain/reports"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
	"github.com/techbytecraft/QSR/internal/infrastructure/http/v1/dto"
)

// RestaurantHandler handles restaurant listing, dashboard stats and tasks.
type RestaurantHandler struct {
	*BaseHandler
	store   *restaurant.Store
	reports *reports.Service
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(base *BaseHandler, store *restaurant.Store, reports *reports.Service) *RestaurantHandler {
	return &RestaurantHandler{BaseHandler: base, store: store, reports: reports}
}

// List handles GET /restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	snaps, err := h.store.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	out := make([]dto.RestaurantSummaryResponse, 0, len(snaps))
	for _, r := range snaps {
		out = append(out, dto.FromRestaurantSummary(r))
	}
	h.OK(c, out)
}

// Get handles GET /restaurants/:rid
// Returns the full snapshot, as the dashboard loads it.
func (h *RestaurantHandler) Get(c *gin.Context) {
	r, err := h.store.Get(c.Request.Context(), c.Param("rid"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromRestaurant(r))
}

// Stats handles GET /restaurants/:rid/stats
func (h *RestaurantHandler) Stats(c *gin.Context) {
	stats, err := h.reports.Stats(c.Request.Context(), c.Param("rid"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromStats(stats))
}

// Forecast handles GET /restaurants/:rid/forecast?timeframe=daily
func (h *RestaurantHandler) Forecast(c *gin.Context) {
	r, err := h.store.Get(c.Request.Context(), c.Param("rid"))
	if err != nil {
		h.Error(c, err)
		return
	}

	tf := inventory.Timeframe(c.DefaultQuery("timeframe", string(inventory.TimeframeMonthly)))
	h.OK(c, dto.FromForecastPoints(r.Sales.Series(tf)))
}

// ListTasks handles GET /restaurants/:rid/tasks
func (h *RestaurantHandler) ListTasks(c *gin.Context) {
	r, err := h.store.Get(c.Request.Context(), c.Param("rid"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromTasks(r.Tasks))
}

// AddTask handles POST /restaurants/:rid/tasks
func (h *RestaurantHandler) AddTask(c *gin.Context) {
	var req dto.AddTaskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	task, err := h.store.AddTask(c.Request.Context(), c.Param("rid"), req.Text)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromTask(task))
}

// ToggleTask handles PATCH /restaurants/:rid/tasks/:tid
func (h *RestaurantHandler) ToggleTask(c *gin.Context) {
	taskID, ok := h.parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.store.ToggleTask(c.Request.Context(), c.Param("rid"), taskID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromTask(task))
}

// DeleteTask handles DELETE /restaurants/:rid/tasks/:tid
func (h *RestaurantHandler) DeleteTask(c *gin.Context) {
	taskID, ok := h.parseTaskID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteTask(c.Request.Context(), c.Param("rid"), taskID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *RestaurantHandler) parseTaskID(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("tid"), 10, 64)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid task id"))
		return 0, false
	}
	return taskID, true
}
