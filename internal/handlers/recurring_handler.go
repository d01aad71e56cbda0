package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
	"moneta/internal/services"
	"moneta/internal/uuid"
)

// RecurringHandler handles recurring transaction schedule requests.
type RecurringHandler struct {
	recurringService services.RecurringServicer
	auditService     services.AuditServicer
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringService services.RecurringServicer, auditService services.AuditServicer) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService, auditService: auditService}
}

// CreateScheduleRequest represents the request payload for creating a schedule
type CreateScheduleRequest struct {
	CategoryID  string                 `json:"category_id" binding:"required"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Description string                 `json:"description" binding:"max=500"`
	Frequency   models.Frequency       `json:"frequency" binding:"required,frequency"`
	StartDate   string                 `json:"start_date" binding:"required"`
	EndDate     *string                `json:"end_date"`
}

// UpdateScheduleRequest represents the request payload for updating a schedule.
// The cadence, start date, and type are fixed at creation.
type UpdateScheduleRequest struct {
	Amount      *int64  `json:"amount" binding:"omitempty,gt=0"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	EndDate     *string `json:"end_date"`
}

// ScheduleResponse represents a recurring schedule in the response
type ScheduleResponse struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id"`
	CategoryID  string                 `json:"category_id"`
	Type        models.TransactionType `json:"type"`
	Amount      int64                  `json:"amount"`
	Description string                 `json:"description"`
	Frequency   models.Frequency       `json:"frequency"`
	StartDate   time.Time              `json:"start_date"`
	EndDate     *time.Time             `json:"end_date,omitempty"`
	IsActive    bool                   `json:"is_active"`
}

// CreateSchedule handles the creation of a new recurring schedule
// @Summary     Create a recurring schedule
// @Description Create a recurring transaction schedule. Due occurrences are materialized into the ledger on login.
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateScheduleRequest true "Schedule details"
// @Success     201 {object} ScheduleResponse "Schedule created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [post]
func (h *RecurringHandler) CreateSchedule(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if !uuid.IsValid(req.CategoryID) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category_id"))
		return
	}

	startDate, err := parseFlexibleTime(req.StartDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.EndDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		endDate = &parsed
	}

	schedule, err := h.recurringService.CreateSchedule(
		userID,
		req.CategoryID,
		req.Type,
		req.Amount,
		req.Description,
		req.Frequency,
		startDate,
		endDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_SCHEDULE", "recurring_transaction", schedule.ID, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "amount": req.Amount, "frequency": req.Frequency})

	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}

// GetUserSchedules handles the retrieval of the user's schedules
// @Summary     Get user schedules
// @Description Get a paginated list of the authenticated user's recurring schedules
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.RecurringTransaction] "Paginated schedules"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [get]
func (h *RecurringHandler) GetUserSchedules(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.recurringService.GetUserSchedules(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetScheduleByID handles the retrieval of a specific schedule
// @Summary     Get schedule by ID
// @Description Get a specific recurring schedule by ID
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Schedule ID"
// @Success     200 {object} ScheduleResponse "Schedule details"
// @Failure     400 {object} ErrorResponse "Invalid schedule ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Schedule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [get]
func (h *RecurringHandler) GetScheduleByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scheduleID, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	schedule, err := h.recurringService.GetScheduleByID(userID, scheduleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// UpdateSchedule handles updating an existing schedule
// @Summary     Update schedule
// @Description Update a schedule's amount, description, or end date. Past occurrences already in the ledger are not touched.
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Schedule ID"
// @Param       request body UpdateScheduleRequest true "Fields to update"
// @Success     200 {object} ScheduleResponse "Updated schedule"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Schedule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [put]
func (h *RecurringHandler) UpdateSchedule(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scheduleID, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.EndDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		endDate = &parsed
	}

	schedule, err := h.recurringService.UpdateSchedule(userID, scheduleID, req.Amount, req.Description, endDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SCHEDULE", "recurring_transaction", scheduleID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// ActivateSchedule resumes a paused schedule
// @Summary     Activate schedule
// @Description Resume a paused schedule. The paused stretch is not backfilled.
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Schedule ID"
// @Success     200 {object} ScheduleResponse "Activated schedule"
// @Failure     400 {object} ErrorResponse "Invalid schedule ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Schedule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id}/activate [post]
func (h *RecurringHandler) ActivateSchedule(c *gin.Context) {
	h.setActive(c, true, "ACTIVATE_SCHEDULE")
}

// DeactivateSchedule pauses a schedule
// @Summary     Deactivate schedule
// @Description Pause a schedule so it stops producing occurrences
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Schedule ID"
// @Success     200 {object} ScheduleResponse "Deactivated schedule"
// @Failure     400 {object} ErrorResponse "Invalid schedule ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Schedule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id}/deactivate [post]
func (h *RecurringHandler) DeactivateSchedule(c *gin.Context) {
	h.setActive(c, false, "DEACTIVATE_SCHEDULE")
}

func (h *RecurringHandler) setActive(c *gin.Context, active bool, auditAction string) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scheduleID, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	schedule, err := h.recurringService.SetScheduleActive(userID, scheduleID, active)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, auditAction, "recurring_transaction", scheduleID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// DeleteSchedule handles the deletion of a schedule
// @Summary     Delete schedule
// @Description Delete a schedule. Transactions it already materialized stay in the ledger.
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Schedule ID"
// @Success     200 {object} MessageResponse "Schedule deleted"
// @Failure     400 {object} ErrorResponse "Invalid schedule ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Schedule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [delete]
func (h *RecurringHandler) DeleteSchedule(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scheduleID, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recurringService.DeleteSchedule(userID, scheduleID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_SCHEDULE", "recurring_transaction", scheduleID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
