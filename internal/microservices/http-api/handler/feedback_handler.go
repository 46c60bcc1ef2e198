package handler

import (
	"net/http"

	"skillswap/internal/microservices/http-api/dto"
	"skillswap/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// RegisterRoutes registers feedback routes under the swap resource
func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/swaps/:id/feedback", h.Submit)
}

// Submit leaves the requester's single review on an accepted swap
// POST /api/swaps/:id/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	swapID, ok := parseIDParam(c, "id", "swap")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	feedback, summary, err := h.feedbackService.Submit(c.Request.Context(), userID, swapID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitFeedbackResponse{
		FeedbackID:    feedback.ID,
		RevieweeID:    feedback.RevieweeID,
		AverageRating: summary.AverageRating,
		TotalReviews:  summary.TotalReviews,
	})
}
