package handler

import (
	"net/http"
	"strconv"

	"skillswap/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers directory routes
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/me", h.Me)
		users.GET("/:id", h.Get)
	}
}

// List returns public, active, unbanned users
// GET /api/users?page=&page_size=
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.userService.ListPublic(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the caller's own profile
// GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	h.renderProfile(c, userID, userID)
}

// Get returns another user's profile
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	h.renderProfile(c, userID, c.Param("id"))
}

func (h *UserHandler) renderProfile(c *gin.Context, viewerID, targetID string) {
	profile, err := h.userService.Profile(c.Request.Context(), viewerID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
