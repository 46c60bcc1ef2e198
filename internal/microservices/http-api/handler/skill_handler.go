package handler

import (
	"net/http"

	"skillswap/internal/microservices/http-api/dto"
	"skillswap/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	catalog service.SkillCatalog
	ledger  service.SkillLedger
}

func NewSkillHandler(catalog service.SkillCatalog, ledger service.SkillLedger) *SkillHandler {
	return &SkillHandler{catalog: catalog, ledger: ledger}
}

// RegisterRoutes registers skill catalog and ledger routes
func (h *SkillHandler) RegisterRoutes(router *gin.RouterGroup) {
	skills := router.Group("/skills")
	{
		skills.GET("", h.List)
		skills.POST("/me", h.UpdateMine)
	}
}

// List returns every known skill ordered by name
// GET /api/skills
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToSkillResponses(skills))
}

// UpdateMine applies the four add/remove lists to the caller's ledger
// POST /api/skills/me
func (h *SkillHandler) UpdateMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.ledger.Update(c.Request.Context(), userID, service.SkillBatch{
		AddOffered:    req.AddOffered,
		RemoveOffered: req.RemoveOffered,
		AddWanted:     req.AddWanted,
		RemoveWanted:  req.RemoveWanted,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.ledger.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	offered, wanted := dto.SplitUserSkills(entries)
	c.JSON(http.StatusOK, dto.UserSkillsResponse{OfferedSkills: offered, WantedSkills: wanted})
}
