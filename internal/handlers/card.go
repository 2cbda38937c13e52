package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
	"github.com/VidsSkids/epitrello-backend/internal/services"
)

type CardHandler struct {
	boardService services.BoardService
}

func NewCardHandler(boardService services.BoardService) *CardHandler {
	return &CardHandler{boardService: boardService}
}

// POST /api/projects/:id/columns/:columnId/cards
func (h *CardHandler) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	card, err := h.boardService.CreateCard(c.Request.Context(), c.Param("id"), c.Param("columnId"), req.Title)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, card)
}

// GET /api/projects/:id/columns/:columnId/cards/:cardId
func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.boardService.GetCard(c.Request.Context(), c.Param("id"), c.Param("columnId"), c.Param("cardId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, card)
}

// PATCH /api/projects/:id/columns/:columnId/cards/:cardId
func (h *CardHandler) Update(c *gin.Context) {
	var patch project.CardPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	card, err := h.boardService.UpdateCard(c.Request.Context(), c.Param("id"), c.Param("columnId"), c.Param("cardId"), patch)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, card)
}

// DELETE /api/projects/:id/columns/:columnId/cards/:cardId
func (h *CardHandler) Delete(c *gin.Context) {
	if err := h.boardService.DeleteCard(c.Request.Context(), c.Param("id"), c.Param("columnId"), c.Param("cardId")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "card deleted"})
}

// POST /api/projects/:id/columns/:columnId/cards/:cardId/toggleDone
func (h *CardHandler) ToggleDone(c *gin.Context) {
	card, err := h.boardService.ToggleCardDone(c.Request.Context(), c.Param("id"), c.Param("columnId"), c.Param("cardId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, card)
}

// PATCH /api/projects/:id/columns/:columnId/cards/:cardId/reorder
// newColumnId moves the card across columns; omitted means reorder in place.
func (h *CardHandler) Reorder(c *gin.Context) {
	var req struct {
		NewIndex    *int   `json:"newIndex"`
		NewColumnID string `json:"newColumnId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NewIndex == nil {
		RespondBadRequest(c, "newIndex is required")
		return
	}
	err := h.boardService.ReorderCard(c.Request.Context(), c.Param("id"), c.Param("columnId"), c.Param("cardId"), *req.NewIndex, req.NewColumnID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "card moved"})
}
