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

type SupplierHandler struct {
	svc *services.SupplierService
}

func NewSupplierHandler(svc *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

// GET /api/supplier/profile
func (h *SupplierHandler) GetProfile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	supplier, err := h.svc.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "supplier": supplier})
}

// PUT /api/supplier/profile
func (h *SupplierHandler) UpdateProfile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var input dto.UpdateSupplierProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	supplier, err := h.svc.UpdateProfile(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
		case errors.Is(err, services.ErrUnknownCode):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Unknown classification code"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to update profile", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "supplier": supplier})
}

// ListActiveQuestionnaires godoc
// @Summary Questionnaires the supplier may answer
// @Tags supplier
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} response.ErrorResponse
// @Router /api/supplier/questionnaires [get]
func (h *SupplierHandler) ListActiveQuestionnaires(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	questionnaires, err := h.svc.ActiveQuestionnaires(userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
		case errors.Is(err, services.ErrSupplierNotApproved):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Message: "Supplier is not approved"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list questionnaires", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "questionnaires": questionnaires})
}

// GET /api/supplier/responses
func (h *SupplierHandler) ListResponses(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	responses, err := h.svc.OwnResponses(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list responses", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "responses": responses})
}
