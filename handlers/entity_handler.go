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

type EntityHandler struct {
	svc *services.EntityService
}

func NewEntityHandler(svc *services.EntityService) *EntityHandler {
	return &EntityHandler{svc: svc}
}

// GET /api/procuring-entity/profile
func (h *EntityHandler) GetProfile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	entity, err := h.svc.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "procuring_entity": entity})
}

// PUT /api/procuring-entity/profile
func (h *EntityHandler) UpdateProfile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var input dto.UpdateEntityProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	entity, err := h.svc.UpdateProfile(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
		case errors.Is(err, services.ErrCompanyNotFound):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Company not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to update profile", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "procuring_entity": entity})
}

// SearchSuppliers godoc
// @Summary Search qualified suppliers
// @Description Approved suppliers with at least one submitted response to the entity's questionnaires, narrowed by conjunctive filters.
// @Tags procuring-entity
// @Security BearerAuth
// @Produce json
// @Param city query string false "City filter"
// @Param country query string false "Country filter"
// @Param min_turnover query number false "Minimum turnover"
// @Param max_turnover query number false "Maximum turnover"
// @Param q query string false "Free-text match on company, registration, contact or email"
// @Param cpv_code query string false "CPV code filter"
// @Param nuts_code query string false "NUTS code filter"
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size"
// @Success 200 {object} response.PagedResponse
// @Router /api/procuring-entity/suppliers/search [get]
func (h *EntityHandler) SearchSuppliers(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var filters dto.SupplierSearchInput
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid filters", Error: err.Error()})
		return
	}

	suppliers, total, err := h.svc.SearchSuppliers(userID, filters)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Search failed", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.PagedResponse{
		Message: "OK",
		Data:    suppliers,
		Total:   total,
		Page:    filters.Page,
		Limit:   filters.Limit,
	})
}
