package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/response"
	"github.com/openprocure/portal-go/services"
	"github.com/openprocure/portal-go/utils"
)

type AnnouncementHandler struct {
	svc *services.AnnouncementService
}

func NewAnnouncementHandler(svc *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

// GET /api/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	items, err := h.svc.ListForUser(claims.UserID, claims.Role)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list announcements", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "announcements": items})
}

// POST /api/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var input dto.CreateAnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	a, err := h.svc.Create(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrCPVCodeNotFound) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "CPV code not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to create announcement", Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Announcement created", "announcement": a})
}

// PUT /api/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid announcement id"})
		return
	}

	var input dto.UpdateAnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	a, err := h.svc.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAnnouncementNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Announcement not found"})
		case errors.Is(err, services.ErrCPVCodeNotFound):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "CPV code not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to update announcement", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement updated", "announcement": a})
}

// DELETE /api/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid announcement id"})
		return
	}

	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrAnnouncementNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Announcement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to delete announcement", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Announcement deleted"})
}
