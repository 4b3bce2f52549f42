package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"activitybooking/internal/delivery/http/helpers"
	"activitybooking/internal/delivery/http/middleware"
	"activitybooking/internal/domain"
)

// CreateActivityRequest is the request body for POST /api/activities.
type CreateActivityRequest struct {
	Name             string         `json:"name"`
	Capacity         *int           `json:"capacity"`
	Schedules        []string       `json:"schedules"`
	Requirements     map[string]any `json:"requirements"`
	RequiresClothing bool           `json:"requires_clothing"`
}

// ActivitySuccessResponse is the success envelope for POST /api/activities (201).
type ActivitySuccessResponse struct {
	Data  *domain.Activity  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ActivityAvailabilitySuccessResponse is the success envelope for GET /api/activities/{activityID}.
type ActivityAvailabilitySuccessResponse struct {
	Data  *domain.ActivityAvailability `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

// ListActivitiesSuccessResponse is the success envelope for GET /api/activities.
type ListActivitiesSuccessResponse struct {
	Data  []*domain.ActivityAvailability `json:"data"`
	Error *helpers.APIError              `json:"error"`
}

// ListVisitorsSuccessResponse is the success envelope for GET /api/visitors.
type ListVisitorsSuccessResponse struct {
	Data  []*domain.Visitor `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSlotsSuccessResponse is the success envelope for GET /api/slots.
type ListSlotsSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivities godoc
// @Summary List activities
// @Description Every activity with its turn capacity, minimum age and booking counts, overall and per schedule.
// @Tags activities
// @Produce json
// @Success 200 {object} controllers.ListActivitiesSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, activities)
}

// GetActivity godoc
// @Summary Get an activity
// @Tags activities
// @Produce json
// @Param activityID path string true "Activity ID (UUID)"
// @Success 200 {object} controllers.ActivityAvailabilitySuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/activities/{activityID} [get]
func (c *ActivityController) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := c.Service.GetActivity(r.Context(), r.PathValue("activityID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "activity not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, activity)
}

// CreateActivity godoc
// @Summary Create an activity
// @Description Schedules default to the whole day grid and capacity to the activity's turn capacity. Requires a staff token when staff auth is enabled.
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param activity body CreateActivityRequest true "Activity data"
// @Success 201 {object} controllers.ActivitySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed (error.details lists every violation)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/activities [post]
func (c *ActivityController) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req CreateActivityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	activity, err := c.Service.CreateActivity(r.Context(), domain.CreateActivityInput{
		Name:             req.Name,
		Capacity:         req.Capacity,
		Schedules:        req.Schedules,
		Requirements:     req.Requirements,
		RequiresClothing: req.RequiresClothing,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteJSONErrorDetails(w, http.StatusBadRequest, helpers.ErrCodeValidationFailed, "invalid data", verr.Errors)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	staffID, _ := middleware.StaffFromContext(r.Context())
	c.Logger.InfoContext(r.Context(), "activity created", "activity_id", activity.ID, "name", activity.Name, "staff_id", staffID)
	helpers.WriteJSONSuccess(w, http.StatusCreated, activity)
}

// ListVisitors godoc
// @Summary List visitors
// @Description Requires a staff token when staff auth is enabled.
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListVisitorsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/visitors [get]
func (c *ActivityController) ListVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := c.Service.ListVisitors(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if staffID, ok := middleware.StaffFromContext(r.Context()); ok {
		c.Logger.InfoContext(r.Context(), "visitor list read", "staff_id", staffID, "count", len(visitors))
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, visitors)
}

// ListSlots godoc
// @Summary List the day's bookable slots
// @Tags activities
// @Produce json
// @Success 200 {object} controllers.ListSlotsSuccessResponse
// @Router /api/slots [get]
func (c *ActivityController) ListSlots(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.DefaultSlots())
}
