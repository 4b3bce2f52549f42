package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"activitybooking/internal/delivery/http/helpers"
	"activitybooking/internal/domain"
)

// defaultSchedule is used when a batch request names no schedule.
const defaultSchedule = "09:00"

// LegacyVisitorRequest is the single visitor of the older request shape.
type LegacyVisitorRequest struct {
	Name          string  `json:"name"`
	DNI           string  `json:"dni"`
	Age           *int    `json:"age"`
	ClothingSize  *string `json:"clothing_size"`
	TermsAccepted *bool   `json:"terms_accepted"`
}

// RegisterRequest is the request body for POST /api/activities/{activityID}/register.
// Either Participants (batch shape) or Visitor (legacy shape) is set.
type RegisterRequest struct {
	Participants      []domain.ParticipantInput `json:"participants"`
	TermsAccepted     bool                      `json:"terms_accepted"`
	ParticipantsCount *int                      `json:"participants_count"`
	CurrentTime       string                    `json:"current_time"`
	Schedule          string                    `json:"schedule"`
	Visitor           *LegacyVisitorRequest     `json:"visitor"`
}

// Normalize turns either request shape into a batch and its schedule.
// The legacy shape requires a schedule and accepts terms unless told otherwise.
// current_time applies to both shapes.
func (req RegisterRequest) Normalize() (domain.RegistrationBatch, string, error) {
	schedule := strings.TrimSpace(req.Schedule)

	if req.Visitor != nil {
		if schedule == "" {
			return domain.RegistrationBatch{}, "", errors.New("schedule is required")
		}
		terms := true
		if req.Visitor.TermsAccepted != nil {
			terms = *req.Visitor.TermsAccepted
		}
		one := 1
		return domain.RegistrationBatch{
			Participants: []domain.ParticipantInput{{
				Name:         req.Visitor.Name,
				DNI:          req.Visitor.DNI,
				Age:          req.Visitor.Age,
				ClothingSize: req.Visitor.ClothingSize,
			}},
			TermsAccepted: terms,
			Count:         &one,
			CurrentTime:   strings.TrimSpace(req.CurrentTime),
		}, schedule, nil
	}

	if schedule == "" {
		schedule = defaultSchedule
	}
	return domain.RegistrationBatch{
		Participants:  req.Participants,
		TermsAccepted: req.TermsAccepted,
		Count:         req.ParticipantsCount,
		CurrentTime:   strings.TrimSpace(req.CurrentTime),
	}, schedule, nil
}

// RegisterSuccessResponse is the body of an admitted registration (200).
type RegisterSuccessResponse struct {
	Success       bool                   `json:"success"`
	Message       string                 `json:"message"`
	ActivityID    string                 `json:"activity_id"`
	Schedule      string                 `json:"schedule"`
	Registrations []*domain.Registration `json:"registrations"`
	Visitors      []*domain.Visitor      `json:"visitors"`
}

// RegisterErrorResponse is the body of a rejected registration (400/404).
type RegisterErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register visitors into an activity turn
// @Description Admits the whole batch or nothing. Accepts {participants, terms_accepted, participants_count, current_time, schedule} (schedule defaults to 09:00) or the legacy {visitor, schedule}.
// @Tags registrations
// @Accept json
// @Produce json
// @Param activityID path string true "Activity ID (UUID)"
// @Param registration body RegisterRequest true "Registration batch"
// @Success 200 {object} controllers.RegisterSuccessResponse
// @Failure 400 {object} controllers.RegisterErrorResponse "code is the rejection kind"
// @Failure 404 {object} controllers.RegisterErrorResponse "code: not_found"
// @Router /api/activities/{activityID}/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := helpers.DecodeJSON(w, r, &req, false); err != nil {
		writeRegisterError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error(), nil)
		return
	}
	batch, schedule, err := req.Normalize()
	if err != nil {
		writeRegisterError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error(), nil)
		return
	}

	res, err := c.Service.Register(r.Context(), r.PathValue("activityID"), batch, schedule)
	if err != nil {
		var admErr *domain.AdmissionError
		if !errors.As(err, &admErr) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			admErr = &domain.AdmissionError{Kind: domain.KindInternalError, Message: "internal error: " + err.Error()}
		}
		status := http.StatusBadRequest
		if admErr.Kind == domain.KindNotFound {
			status = http.StatusNotFound
		}
		writeRegisterError(w, status, string(admErr.Kind), admErr.Message, admErr.Details)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, RegisterSuccessResponse{
		Success:       true,
		Message:       res.Message,
		ActivityID:    res.ActivityID,
		Schedule:      res.Schedule,
		Registrations: res.Registrations,
		Visitors:      res.Visitors,
	})
}

func writeRegisterError(w http.ResponseWriter, status int, code, message string, details []string) {
	helpers.WriteJSON(w, status, RegisterErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
		Details: details,
	})
}
