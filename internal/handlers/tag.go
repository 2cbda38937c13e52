package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
	"github.com/VidsSkids/epitrello-backend/internal/services"
)

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// POST /api/projects/:id/tags
func (h *TagHandler) Create(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	tag, err := h.tagService.Create(c.Request.Context(), c.Param("id"), req.Name, req.Color)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, tag)
}

// PATCH /api/projects/:id/tags/:tagId
func (h *TagHandler) Update(c *gin.Context) {
	var patch project.TagPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	tag, err := h.tagService.Update(c.Request.Context(), c.Param("id"), c.Param("tagId"), patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, tag)
}

// DELETE /api/projects/:id/tags/:tagId
func (h *TagHandler) Delete(c *gin.Context) {
	if err := h.tagService.Delete(c.Request.Context(), c.Param("id"), c.Param("tagId")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "tag deleted"})
}

// POST /api/projects/:id/tags/attach/:tagId/:cardId
func (h *TagHandler) Attach(c *gin.Context) {
	if err := h.tagService.Assign(c.Request.Context(), c.Param("id"), c.Param("cardId"), c.Param("tagId")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "tag attached"})
}

// POST /api/projects/:id/tags/detach/:tagId/:cardId
func (h *TagHandler) Detach(c *gin.Context) {
	if err := h.tagService.Unassign(c.Request.Context(), c.Param("id"), c.Param("cardId"), c.Param("tagId")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "tag detached"})
}
