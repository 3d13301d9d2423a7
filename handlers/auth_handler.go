package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/response"
	"github.com/openprocure/portal-go/services"
	"github.com/openprocure/portal-go/utils"
)

type AuthHandler struct {
	svc         *services.AuthService
	supplierSvc *services.SupplierService
	entitySvc   *services.EntityService
}

func NewAuthHandler(svc *services.AuthService, supplierSvc *services.SupplierService, entitySvc *services.EntityService) *AuthHandler {
	return &AuthHandler{svc: svc, supplierSvc: supplierSvc, entitySvc: entitySvc}
}

// Register godoc
// @Summary Register a supplier account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterSupplierInput true "Registration payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	supplier, err := h.svc.RegisterSupplier(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Email already associated with an account"})
		case errors.Is(err, services.ErrUnknownCode):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Unknown classification code"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Registration failed", Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration received, awaiting review", "supplier": supplier})
}

// Login godoc
// @Summary Authenticate and obtain a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	user, token, err := h.svc.Login(input)
	if err != nil {
		if errors.Is(err, services.ErrAccountDeactivated) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Message: "Account is deactivated"})
			return
		}
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Message: "Login successful",
		Token:   token,
		UserID:  user.ID,
		Email:   user.Email,
		Role:    string(user.Role),
	})
}

// Me godoc
// @Summary Current identity and profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	payload := gin.H{"message": "OK", "user_id": claims.UserID, "email": claims.Email, "role": claims.Role}

	switch models.UserRole(claims.Role) {
	case models.UserRoleSupplier:
		if supplier, err := h.supplierSvc.GetProfile(claims.UserID); err == nil {
			payload["supplier"] = supplier
		}
	case models.UserRoleProcuringEntity:
		if entity, err := h.entitySvc.GetProfile(claims.UserID); err == nil {
			payload["procuring_entity"] = entity
		}
	}

	c.JSON(http.StatusOK, payload)
}
