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

type AdminHandler struct {
	svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// CreateUser godoc
// @Summary Create a user of any role
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateUserInput true "User payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	user, err := h.svc.CreateUser(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Email already associated with an account"})
		case errors.Is(err, services.ErrMissingProfileName):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Profile name is required for the role"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to create user", Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": user})
}

// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list users", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "users": users})
}

// GET /api/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid user id"})
		return
	}

	user, err := h.svc.GetUser(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "user": user})
}

// PUT /api/admin/users/:id/deactivate
func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	h.setUserActive(c, false)
}

// PUT /api/admin/users/:id/activate
func (h *AdminHandler) ActivateUser(c *gin.Context) {
	h.setUserActive(c, true)
}

func (h *AdminHandler) setUserActive(c *gin.Context, active bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid user id"})
		return
	}

	user, err := h.svc.SetUserActive(id, active)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": user})
}

// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid user id"})
		return
	}

	if err := h.svc.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to delete user", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted"})
}

// ListSuppliers godoc
// @Summary List suppliers, optionally by status
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/suppliers [get]
func (h *AdminHandler) ListSuppliers(c *gin.Context) {
	status := models.SupplierStatus(c.Query("status"))

	suppliers, err := h.svc.ListSuppliers(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list suppliers", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "suppliers": suppliers})
}

// PUT /api/admin/suppliers/:id/approve
func (h *AdminHandler) ApproveSupplier(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid supplier id"})
		return
	}
	adminID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	supplier, err := h.svc.ApproveSupplier(adminID, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSupplierNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Supplier not found"})
		case errors.Is(err, services.ErrSupplierNotPending):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Supplier is not pending review"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to approve supplier", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier approved", "supplier": supplier})
}

// PUT /api/admin/suppliers/:id/reject
func (h *AdminHandler) RejectSupplier(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid supplier id"})
		return
	}

	var input dto.RejectSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Rejection reason is required", Error: err.Error()})
		return
	}

	supplier, err := h.svc.RejectSupplier(id, input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSupplierNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Supplier not found"})
		case errors.Is(err, services.ErrSupplierNotPending):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Supplier is not pending review"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to reject supplier", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier rejected", "supplier": supplier})
}

// PUT /api/admin/suppliers/:id/reopen
func (h *AdminHandler) ReopenSupplier(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid supplier id"})
		return
	}

	supplier, err := h.svc.ReopenSupplier(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSupplierNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Supplier not found"})
		case errors.Is(err, services.ErrSupplierNotRejected):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Supplier is not rejected"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to reopen supplier", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier reopened for review", "supplier": supplier})
}
