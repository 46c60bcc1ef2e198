package handler

import (
	"net/http"

	"skillswap/internal/microservices/http-api/dto"
	"skillswap/internal/microservices/http-api/models"
	"skillswap/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type SwapHandler struct {
	swapService service.SwapService
}

func NewSwapHandler(swapService service.SwapService) *SwapHandler {
	return &SwapHandler{swapService: swapService}
}

// RegisterRoutes registers swap lifecycle routes
func (h *SwapHandler) RegisterRoutes(router *gin.RouterGroup) {
	swaps := router.Group("/swaps")
	{
		swaps.POST("", h.Create)
		swaps.GET("", h.ListMine)
		swaps.POST("/:id/status", h.UpdateStatus)
	}
}

// Create opens a pending request to another user
// POST /api/swaps
func (h *SwapHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	swap, err := h.swapService.Create(c.Request.Context(), userID, service.CreateSwapInput{
		ReceiverID:    req.ReceiverID,
		Message:       req.Message,
		OfferedSkills: req.OfferedSkills,
		WantedSkills:  req.WantedSkills,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToSwapResponse(swap))
}

// ListMine returns requests the caller sent or received
// GET /api/swaps
func (h *SwapHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	swaps, err := h.swapService.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToSwapResponses(swaps))
}

// UpdateStatus accepts, rejects, or cancels a pending request
// POST /api/swaps/:id/status
func (h *SwapHandler) UpdateStatus(c *gin.Context) {
	swapID, ok := parseIDParam(c, "id", "swap")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSwapStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	swap, err := h.swapService.Transition(c.Request.Context(), swapID, userID, models.SwapStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToSwapResponse(swap))
}
