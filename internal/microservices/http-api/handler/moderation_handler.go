package handler

import (
	"net/http"

	"skillswap/internal/microservices/http-api/dto"
	"skillswap/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderation  service.ModerationService
	swapService service.SwapService
}

func NewModerationHandler(moderation service.ModerationService, swapService service.SwapService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation, swapService: swapService}
}

// RegisterRoutes registers admin routes; the group must already require admin
func (h *ModerationHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/users/:id/ban", h.SetBanned)
	admin.GET("/swaps", h.MonitorSwaps)
	admin.GET("/messages", h.ListMessages)
	admin.POST("/messages", h.PostMessage)
}

// RegisterPublicRoutes exposes the message feed to any authenticated user
func (h *ModerationHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/messages", h.ListMessages)
}

// SetBanned bans or unbans a user
// POST /api/admin/users/:id/ban
func (h *ModerationHandler) SetBanned(c *gin.Context) {
	userID := c.Param("id")

	var req dto.SetBannedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.moderation.SetBanned(c.Request.Context(), userID, *req.IsBanned); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SetBannedResponse{UserID: userID, IsBanned: *req.IsBanned})
}

// MonitorSwaps lists all swap requests, optionally by status
// GET /api/admin/swaps?status=
func (h *ModerationHandler) MonitorSwaps(c *gin.Context) {
	swaps, err := h.swapService.Monitor(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToSwapMonitorResponses(swaps))
}

// ListMessages returns platform messages newest first
// GET /api/messages, GET /api/admin/messages
func (h *ModerationHandler) ListMessages(c *gin.Context) {
	msgs, err := h.moderation.ListMessages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToMessageResponses(msgs))
}

// PostMessage broadcasts a new platform message
// POST /api/admin/messages
func (h *ModerationHandler) PostMessage(c *gin.Context) {
	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	msg, err := h.moderation.PostMessage(c.Request.Context(), req.Title, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToMessageResponse(msg))
}
