package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
	"github.com/openprocure/portal-go/utils"
)

var (
	ErrDocumentInUse = errors.New("document is referenced by an answer")
)

type DocumentService struct {
	Repos *repositories.Repos
}

func NewDocumentService(repos *repositories.Repos) *DocumentService {
	return &DocumentService{Repos: repos}
}

// Upload streams the file to object storage under a uuid-prefixed name and
// records the metadata row.
func (s *DocumentService) Upload(ctx context.Context, ownerUserID uint, fileHeader *multipart.FileHeader) (models.Document, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return models.Document{}, err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectPath := fmt.Sprintf("documents/%d/%s%s", ownerUserID, uuid.NewString(), filepath.Ext(fileHeader.Filename))
	if err := utils.UploadObject(ctx, objectPath, contentType, file, fileHeader.Size); err != nil {
		return models.Document{}, err
	}

	doc := models.Document{
		OwnerUserID: ownerUserID,
		FileName:    fileHeader.Filename,
		ObjectPath:  objectPath,
		MimeType:    contentType,
		Size:        fileHeader.Size,
	}
	if err := s.Repos.Document.Create(&doc); err != nil {
		// Orphaned object; best effort cleanup.
		if removeErr := utils.DeleteObject(ctx, objectPath); removeErr != nil {
			log.Printf("Failed to remove orphaned object %s: %v", objectPath, removeErr)
		}
		return models.Document{}, err
	}
	return doc, nil
}

func (s *DocumentService) ListOwn(ownerUserID uint) ([]models.Document, error) {
	return s.Repos.Document.ListByOwner(ownerUserID)
}

func (s *DocumentService) GetOwned(ownerUserID, documentID uint) (models.Document, error) {
	doc, err := s.Repos.Document.GetByID(documentID)
	if err != nil || doc.OwnerUserID != ownerUserID {
		return models.Document{}, ErrDocumentNotFound
	}
	return doc, nil
}

func (s *DocumentService) Open(ctx context.Context, doc models.Document) (io.ReadCloser, error) {
	return utils.DownloadObject(ctx, doc.ObjectPath)
}

// Delete removes the record and then the stored object. A document still
// referenced by an answer cannot be deleted.
func (s *DocumentService) Delete(ctx context.Context, ownerUserID, documentID uint) error {
	doc, err := s.GetOwned(ownerUserID, documentID)
	if err != nil {
		return err
	}

	inUse, err := s.Repos.Document.InUse(doc.ID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrDocumentInUse
	}

	if err := s.Repos.Document.Delete(doc.ID); err != nil {
		return err
	}
	if err := utils.DeleteObject(ctx, doc.ObjectPath); err != nil {
		log.Printf("Failed to remove object %s: %v", doc.ObjectPath, err)
	}
	return nil
}
