package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/services"
)

// maxReceiptSize caps uploaded receipt images at 8 MiB.
const maxReceiptSize = 8 << 20

// InsightHandler handles model-backed insight requests.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// CategorizeRequest represents the request payload for categorization
type CategorizeRequest struct {
	Description string `json:"description" binding:"required,min=1,max=500"`
}

// CategorizeTransaction suggests a category for a transaction description
// @Summary     Categorize transaction
// @Description Suggest one of the user's expense categories for a free-text description
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategorizeRequest true "Transaction description"
// @Success     200 {object} oracle.CategorySuggestion "Suggested category and confidence"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/categorize [post]
func (h *InsightHandler) CategorizeTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	suggestion, err := h.insightService.CategorizeTransaction(c.Request.Context(), userID, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// ScanReceipt extracts merchant, total, and date from a receipt image
// @Summary     Scan receipt
// @Description Extract the merchant, total, and date from an uploaded receipt image. Premium only.
// @Tags        insights
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       image formData file true "Receipt image (JPEG or PNG, max 8 MiB)"
// @Success     200 {object} oracle.ReceiptScan "Extracted receipt data"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Premium required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights/receipt [post]
func (h *InsightHandler) ScanReceipt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "image file is required"))
		return
	}
	if fileHeader.Size > maxReceiptSize {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "image exceeds the 8 MiB limit"))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType != "image/jpeg" && mimeType != "image/png" && mimeType != "image/webp" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "image must be JPEG, PNG, or WebP"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxReceiptSize))
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	scan, err := h.insightService.ScanReceipt(c.Request.Context(), userID, image, mimeType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipt": scan})
}
