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

type QuestionnaireHandler struct {
	svc         *services.QuestionnaireService
	responseSvc *services.ResponseService
}

func NewQuestionnaireHandler(svc *services.QuestionnaireService, responseSvc *services.ResponseService) *QuestionnaireHandler {
	return &QuestionnaireHandler{svc: svc, responseSvc: responseSvc}
}

func (h *QuestionnaireHandler) mapAuthoringError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
	case errors.Is(err, services.ErrQuestionnaireNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Questionnaire not found"})
	case errors.Is(err, services.ErrCPVCodeNotFound):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "CPV code not found"})
	case errors.Is(err, services.ErrOptionsRequired):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Options are required for choice question types"})
	case errors.Is(err, services.ErrOptionsNotAllowed):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Options are only allowed for choice question types"})
	case errors.Is(err, services.ErrHasSubmittedResponses):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Questionnaire has submitted responses"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Questionnaire operation failed", Error: err.Error()})
	}
}

// Create godoc
// @Summary Create a questionnaire with its ordered questions
// @Tags questionnaires
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionnaireInput true "Questionnaire payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/questionnaires [post]
func (h *QuestionnaireHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var input dto.CreateQuestionnaireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	q, err := h.svc.Create(userID, input)
	if err != nil {
		h.mapAuthoringError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Questionnaire created", "questionnaire": q})
}

// GET /api/questionnaires
func (h *QuestionnaireHandler) List(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	questionnaires, err := h.svc.ListOwn(userID)
	if err != nil {
		h.mapAuthoringError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "questionnaires": questionnaires})
}

// GET /api/questionnaires/:id
func (h *QuestionnaireHandler) Get(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid questionnaire id"})
		return
	}

	q, err := h.svc.Get(userID, id)
	if err != nil {
		h.mapAuthoringError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "questionnaire": q})
}

// Update godoc
// @Summary Update a questionnaire, replacing its question list wholesale
// @Tags questionnaires
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Questionnaire ID"
// @Param request body dto.UpdateQuestionnaireInput true "Update payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/questionnaires/{id} [put]
func (h *QuestionnaireHandler) Update(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid questionnaire id"})
		return
	}

	var input dto.UpdateQuestionnaireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	q, err := h.svc.Update(userID, id, input)
	if err != nil {
		h.mapAuthoringError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Questionnaire updated", "questionnaire": q})
}

// DELETE /api/questionnaires/:id
func (h *QuestionnaireHandler) Delete(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid questionnaire id"})
		return
	}

	if err := h.svc.Delete(userID, id); err != nil {
		h.mapAuthoringError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Questionnaire deleted"})
}

// GET /api/questionnaires/:id/responses
func (h *QuestionnaireHandler) ListResponses(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid questionnaire id"})
		return
	}

	responses, err := h.svc.SubmittedResponses(userID, id)
	if err != nil {
		h.mapAuthoringError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "responses": responses})
}

// SaveResponse godoc
// @Summary Save or submit the supplier's response
// @Tags questionnaires
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Questionnaire ID"
// @Param request body dto.SaveResponseInput true "Answers and desired status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /api/questionnaires/{id}/response [put]
func (h *QuestionnaireHandler) SaveResponse(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid questionnaire id"})
		return
	}

	var input dto.SaveResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input", Error: err.Error()})
		return
	}

	resp, err := h.responseSvc.Save(userID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
		case errors.Is(err, services.ErrQuestionnaireNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Questionnaire not found"})
		case errors.Is(err, services.ErrSupplierNotApproved):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Message: "Supplier is not approved"})
		case errors.Is(err, services.ErrQuestionnaireClosed):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Questionnaire is closed"})
		case errors.Is(err, services.ErrResponseSubmitted):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Response has already been submitted"})
		case errors.Is(err, services.ErrCPVCodeNotHeld):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Message: "Supplier does not hold the questionnaire's CPV code"})
		case errors.Is(err, services.ErrUnknownQuestion):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Answer references a question outside the questionnaire"})
		case errors.Is(err, services.ErrDocumentRequired):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Question requires a document"})
		case errors.Is(err, services.ErrDocumentNotFound):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Document not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to save response", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Response saved", "response": resp})
}

// GET /api/questionnaires/:id/response
func (h *QuestionnaireHandler) GetOwnResponse(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid questionnaire id"})
		return
	}

	resp, err := h.responseSvc.GetOwn(userID, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Profile not found"})
		case errors.Is(err, services.ErrResponseNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Response not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to load response", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "response": resp})
}
