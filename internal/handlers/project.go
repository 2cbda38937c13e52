package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VidsSkids/epitrello-backend/internal/services"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	summary, err := h.projectService.Create(c.Request.Context(), req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, summary)
}

// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.ListForUser(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"projects": projects})
}

// GET /api/projects/invitations
func (h *ProjectHandler) Invitations(c *gin.Context) {
	invitations, err := h.projectService.InvitationsForUser(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"invitations": invitations})
}

// GET /api/projects/sent
func (h *ProjectHandler) SentInvitations(c *gin.Context) {
	invitations, err := h.projectService.SentInvitations(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"invitations": invitations})
}

// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.projectService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, p)
}

// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "project deleted"})
}

// POST /api/projects/:id/invite
func (h *ProjectHandler) Invite(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		RespondBadRequest(c, "invitee name is required")
		return
	}
	if err := h.projectService.Invite(c.Request.Context(), c.Param("id"), req.Name); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "invitation sent"})
}

// POST /api/projects/:id/accept
func (h *ProjectHandler) Accept(c *gin.Context) {
	if err := h.projectService.Accept(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "invitation accepted"})
}

// POST /api/projects/:id/decline
func (h *ProjectHandler) Decline(c *gin.Context) {
	if err := h.projectService.Decline(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "invitation declined"})
}

// POST /api/projects/:id/revokeInvitation
func (h *ProjectHandler) RevokeInvitation(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		RespondBadRequest(c, "invitee name is required")
		return
	}
	if err := h.projectService.Revoke(c.Request.Context(), c.Param("id"), req.Name); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "invitation revoked"})
}

// POST /api/projects/:id/leave
func (h *ProjectHandler) Leave(c *gin.Context) {
	if err := h.projectService.Leave(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "left project"})
}

// POST /api/projects/:id/remove/:memberId
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	if err := h.projectService.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("memberId")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "member removed"})
}

// PATCH /api/projects/:id/members/:memberId/role
func (h *ProjectHandler) ChangeRole(c *gin.Context) {
	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Role == "" {
		RespondBadRequest(c, "role is required")
		return
	}
	if err := h.projectService.ChangeRole(c.Request.Context(), c.Param("id"), c.Param("memberId"), req.Role); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "role updated"})
}
