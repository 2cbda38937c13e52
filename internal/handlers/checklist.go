package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
	"github.com/VidsSkids/epitrello-backend/internal/services"
)

type ChecklistHandler struct {
	checklistService services.ChecklistService
}

func NewChecklistHandler(checklistService services.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// POST /api/projects/:id/columns/:columnId/cards/:cardId/checklists
func (h *ChecklistHandler) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	cl, err := h.checklistService.Create(c.Request.Context(), c.Param("id"), c.Param("cardId"), req.Title)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, cl)
}

// PATCH /api/projects/:id/columns/:columnId/cards/:cardId/checklists/:checklistId
func (h *ChecklistHandler) Rename(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	cl, err := h.checklistService.Rename(c.Request.Context(), c.Param("id"), c.Param("cardId"), c.Param("checklistId"), req.Title)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, cl)
}

// DELETE /api/projects/:id/columns/:columnId/cards/:cardId/checklists/:checklistId
func (h *ChecklistHandler) Delete(c *gin.Context) {
	if err := h.checklistService.Delete(c.Request.Context(), c.Param("id"), c.Param("cardId"), c.Param("checklistId")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "checklist deleted"})
}

// POST /api/projects/:id/columns/:columnId/cards/:cardId/checklists/:checklistId/items
func (h *ChecklistHandler) CreateItem(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	item, err := h.checklistService.CreateItem(c.Request.Context(), c.Param("id"), c.Param("cardId"), c.Param("checklistId"), req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, item)
}

// PATCH /api/projects/:id/columns/:columnId/cards/:cardId/checklists/:checklistId/items/:itemId
func (h *ChecklistHandler) UpdateItem(c *gin.Context) {
	var patch project.ChecklistItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	item, err := h.checklistService.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("cardId"), c.Param("checklistId"), c.Param("itemId"), patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, item)
}

// DELETE /api/projects/:id/columns/:columnId/cards/:cardId/checklists/:checklistId/items/:itemId
func (h *ChecklistHandler) DeleteItem(c *gin.Context) {
	if err := h.checklistService.DeleteItem(c.Request.Context(), c.Param("id"), c.Param("cardId"), c.Param("checklistId"), c.Param("itemId")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "checklist item deleted"})
}
