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

// TaxonomyHandler serves the CPV/NUTS classification code lists. Reads are
// open to any authenticated role; writes are admin-only.
type TaxonomyHandler struct {
	svc *services.AdminService
}

func NewTaxonomyHandler(svc *services.AdminService) *TaxonomyHandler {
	return &TaxonomyHandler{svc: svc}
}

// GET /api/cpv
func (h *TaxonomyHandler) ListCPV(c *gin.Context) {
	codes, err := h.svc.Repos.Classification.ListCPV()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list CPV codes", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "cpv_codes": codes})
}

// POST /api/cpv
func (h *TaxonomyHandler) CreateCPV(c *gin.Context) {
	var input dto.CreateCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	code, err := h.svc.CreateCPVCode(input)
	if err != nil {
		if errors.Is(err, services.ErrCodeTaken) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Classification code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to create CPV code", Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "CPV code created", "cpv_code": code})
}

// DELETE /api/cpv/:id
func (h *TaxonomyHandler) DeleteCPV(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid code id"})
		return
	}

	if err := h.svc.DeleteCPVCode(id); err != nil {
		if errors.Is(err, services.ErrCodeInUse) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Classification code is referenced and cannot be deleted"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to delete CPV code", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "CPV code deleted"})
}

// GET /api/nuts
func (h *TaxonomyHandler) ListNUTS(c *gin.Context) {
	codes, err := h.svc.Repos.Classification.ListNUTS()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list NUTS codes", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "nuts_codes": codes})
}

// POST /api/nuts
func (h *TaxonomyHandler) CreateNUTS(c *gin.Context) {
	var input dto.CreateCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	code, err := h.svc.CreateNUTSCode(input)
	if err != nil {
		if errors.Is(err, services.ErrCodeTaken) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Classification code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to create NUTS code", Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "NUTS code created", "nuts_code": code})
}

// DELETE /api/nuts/:id
func (h *TaxonomyHandler) DeleteNUTS(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid code id"})
		return
	}

	if err := h.svc.DeleteNUTSCode(id); err != nil {
		if errors.Is(err, services.ErrCodeInUse) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Classification code is referenced and cannot be deleted"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to delete NUTS code", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "NUTS code deleted"})
}
