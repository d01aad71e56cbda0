package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/services"
)

// ReportHandler handles reporting requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseReportRange reads from_date/to_date query parameters, defaulting to the
// current calendar month.
func parseReportRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := now

	if v := c.Query("from_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return from, to, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use RFC3339 or YYYY-MM-DD")
		}
		from = t
	}
	if v := c.Query("to_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return from, to, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use RFC3339 or YYYY-MM-DD")
		}
		to = t
	}
	if to.Before(from) {
		return from, to, apperrors.WithMessage(apperrors.ErrInvalidInput, "to_date must not be before from_date")
	}
	return from, to, nil
}

// GetSummary returns income, expense, and net totals over a range
// @Summary     Get spending summary
// @Description Get total income, total expenses, and net over a date range (defaults to the current month)
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Range start (RFC3339 or YYYY-MM-DD, default first of current month)"
// @Param       to_date   query string false "Range end (RFC3339 or YYYY-MM-DD, default now)"
// @Success     200 {object} services.ReportSummary "Summary totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, to, err := parseReportRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.GetSummary(userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategoryBreakdown returns per-category spending over a range
// @Summary     Get category breakdown
// @Description Get spending per expense category over a date range, largest first (defaults to the current month)
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Range start (RFC3339 or YYYY-MM-DD, default first of current month)"
// @Param       to_date   query string false "Range end (RFC3339 or YYYY-MM-DD, default now)"
// @Success     200 {object} map[string][]services.CategoryBreakdownEntry "Category breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/breakdown [get]
func (h *ReportHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, to, err := parseReportRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.reportService.GetCategoryBreakdown(userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}
