package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VidsSkids/epitrello-backend/internal/services"
)

type ColumnHandler struct {
	boardService services.BoardService
}

func NewColumnHandler(boardService services.BoardService) *ColumnHandler {
	return &ColumnHandler{boardService: boardService}
}

// POST /api/projects/:id/columns
func (h *ColumnHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	col, err := h.boardService.CreateColumn(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, col)
}

// PATCH /api/projects/:id/columns/:columnId
func (h *ColumnHandler) Rename(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	col, err := h.boardService.RenameColumn(c.Request.Context(), c.Param("id"), c.Param("columnId"), req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, col)
}

// PATCH /api/projects/:id/columns/:columnId/reorder
func (h *ColumnHandler) Reorder(c *gin.Context) {
	var req struct {
		NewPosition *int `json:"newPosition"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NewPosition == nil {
		RespondBadRequest(c, "newPosition is required")
		return
	}
	columns, err := h.boardService.ReorderColumn(c.Request.Context(), c.Param("id"), c.Param("columnId"), *req.NewPosition)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"columns": columns})
}

// DELETE /api/projects/:id/columns/:columnId
func (h *ColumnHandler) Delete(c *gin.Context) {
	if err := h.boardService.DeleteColumn(c.Request.Context(), c.Param("id"), c.Param("columnId")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "column deleted"})
}
