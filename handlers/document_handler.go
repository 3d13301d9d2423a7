package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openprocure/portal-go/response"
	"github.com/openprocure/portal-go/services"
	"github.com/openprocure/portal-go/utils"
)

type DocumentHandler struct {
	svc *services.DocumentService
}

func NewDocumentHandler(svc *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// Upload godoc
// @Summary Upload a document
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "File is required", Error: err.Error()})
		return
	}

	doc, err := h.svc.Upload(c.Request.Context(), userID, fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Upload failed", Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Document uploaded", "document": doc})
}

// GET /api/documents
func (h *DocumentHandler) List(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	docs, err := h.svc.ListOwn(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list documents", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK", "documents": docs})
}

// GET /api/documents/:id
func (h *DocumentHandler) Download(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid document id"})
		return
	}

	doc, err := h.svc.GetOwned(userID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Document not found"})
		return
	}

	reader, err := h.svc.Open(c.Request.Context(), doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to open document", Error: err.Error()})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Type", doc.MimeType)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers already sent; nothing useful left to do.
		return
	}
}

// DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid document id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, services.ErrDocumentNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Document not found"})
		case errors.Is(err, services.ErrDocumentInUse):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Document is referenced by an answer"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to delete document", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Document deleted"})
}
