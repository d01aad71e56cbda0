package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/pagination"
	"moneta/internal/services"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	goalService  services.GoalServicer
	auditService services.AuditServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer, auditService services.AuditServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, auditService: auditService}
}

// CreateGoalRequest represents the request payload for creating a goal
type CreateGoalRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	TargetAmount int64  `json:"target_amount" binding:"required,gt=0"`
}

// FundGoalRequest represents the request payload for funding a goal
type FundGoalRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// GoalResponse represents a goal in the response
type GoalResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	TargetAmount int64      `json:"target_amount"`
	SavedAmount  int64      `json:"saved_amount"`
	IsCompleted  bool       `json:"is_completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Plan         string     `json:"plan,omitempty"`
}

// CreateGoal handles the creation of a new goal
// @Summary     Create a goal
// @Description Create a new savings goal for the authenticated user
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} GoalResponse "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(userID, req.Name, req.TargetAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_GOAL", "goal", goal.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "target_amount": req.TargetAmount})

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetUserGoals handles the retrieval of the user's goals
// @Summary     Get user goals
// @Description Get a paginated list of the authenticated user's goals
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Goal] "Paginated goals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetUserGoals(c *gin.Context) {
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

	result, err := h.goalService.GetUserGoals(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGoalByID handles the retrieval of a specific goal
// @Summary     Get goal by ID
// @Description Get a specific goal by ID
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} GoalResponse "Goal details"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoalByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoalByID(userID, goalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// FundGoal handles moving money from the balance into a goal
// @Summary     Fund goal
// @Description Move money into a goal. Books a Savings expense against the balance and credits the goal; the first crossing of the target awards bonus points, and further contributions keep accumulating.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "Goal ID"
// @Param       request body FundGoalRequest true "Contribution amount in cents"
// @Success     200 {object} GoalResponse "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input, no income recorded, or insufficient balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/fund [post]
func (h *GoalHandler) FundGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req FundGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.FundGoal(userID, goalID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "FUND_GOAL", "goal", goalID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles the deletion of a goal
// @Summary     Delete goal
// @Description Delete a goal. Contribution expenses already booked stay in the ledger.
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_GOAL", "goal", goalID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}

// SuggestGoals returns model-generated goal suggestions
// @Summary     Suggest goals
// @Description Generate savings goal suggestions from the user's financial summary. Premium only.
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Goal suggestions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Premium required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/suggest [get]
func (h *GoalHandler) SuggestGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	suggestions, err := h.goalService.SuggestGoals(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// GenerateBudgetPlan generates and stores a budget plan for a goal
// @Summary     Generate budget plan
// @Description Generate a personalized budget plan for a goal from recent spending. Premium only. Regenerating refines the previous plan.
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} GoalResponse "Goal with the generated plan"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Premium required"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/plan [post]
func (h *GoalHandler) GenerateBudgetPlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := getPathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GenerateBudgetPlan(c.Request.Context(), userID, goalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "GENERATE_BUDGET_PLAN", "goal", goalID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}
