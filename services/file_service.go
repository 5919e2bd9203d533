// services/file_service.go
package services

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/middleware"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/repositories"
	"github.com/ediestyles/closet_backend/utils"
)

const (
	thumbnailWidth  = 300
	thumbnailHeight = 300
)

// FileService implements the file ingestion workflow and the per-file
// operations on category items.
type FileService struct {
	clients    repositories.ClientStore
	categories repositories.CategoryStore
	blobs      utils.BlobStore
	remover    BackgroundRemover
	keyPrefix  string
}

func NewFileService(clients repositories.ClientStore, categories repositories.CategoryStore, blobs utils.BlobStore, remover BackgroundRemover, keyPrefix string) *FileService {
	return &FileService{
		clients:    clients,
		categories: categories,
		blobs:      blobs,
		remover:    remover,
		keyPrefix:  keyPrefix,
	}
}

// Create validates and ingests an uploaded image: optional background
// removal, thumbnail generation, blob upload, record insertion into the
// category, and finally a credit debit for non-super-admin clients. The debit
// happens only after the record is persisted; uploaded blobs are not rolled
// back on a late failure.
func (s *FileService) Create(ctx context.Context, claim *middleware.JwtCustomClaims, clientID, rawRef string, req models.CreateFileRequest) (*models.FileRef, error) {
	if req.FileSrc == "" {
		return nil, apperr.InvalidArgument("missing file source")
	}
	if req.FullFileName == "" {
		return nil, apperr.InvalidArgument("missing file name")
	}
	if _, err := primitive.ObjectIDFromHex(clientID); err != nil {
		return nil, apperr.InvalidArgument("invalid or missing client id")
	}

	ref, err := models.ParseCategoryRef(rawRef)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid category id")
	}
	exists, err := s.categories.Exists(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("category not found")
	}

	if req.RemoveBackground == nil || req.Crop == nil {
		return nil, apperr.InvalidArgument("missing background removal or crop flag")
	}

	// Admins and super admins may skip processing; everyone else, including
	// a request without a resolvable claim, must fully process the upload.
	privileged := claim != nil && (claim.IsAdmin || claim.IsSuperAdmin)
	if !privileged && (!*req.RemoveBackground || !*req.Crop) {
		return nil, apperr.Forbidden("non-admins must remove background and crop image on file upload")
	}

	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	// Super admins upload for free; everyone else needs a positive balance.
	// The check and the debit below are separate reads, so concurrent uploads
	// against the same balance can both pass the gate.
	creditGated := !client.IsSuperAdmin
	credits := 0
	if creditGated {
		credits, err = s.clients.Credits(ctx, clientID)
		if err != nil {
			return nil, err
		}
		if credits <= 0 {
			return nil, apperr.Forbidden("client does not have any credits")
		}
	}

	img, err := utils.DecodeBase64Image(req.FileSrc)
	if err != nil {
		return nil, err
	}
	if *req.RemoveBackground {
		img, err = s.remover.Process(ctx, img, *req.Crop)
		if err != nil {
			return nil, err
		}
	}

	thumb, err := utils.CreateImageThumbnail(img, thumbnailWidth, thumbnailHeight)
	if err != nil {
		return nil, err
	}

	fileID := uuid.New().String()
	fullKey, smallKey := utils.ItemBlobKeys(s.keyPrefix, fileID)

	fullURL, err := s.blobs.Put(ctx, fullKey, img)
	if err != nil {
		return nil, err
	}
	smallURL, err := s.blobs.Put(ctx, smallKey, thumb)
	if err != nil {
		return nil, err
	}

	name := utils.ParseFileNameStem(req.FullFileName)
	if name == "" {
		return nil, apperr.Internal("error parsing file name")
	}

	file := models.FileRef{
		ClientID:     clientID,
		FileName:     name,
		FullFileURL:  fullURL,
		SmallFileURL: smallURL,
		FullBlobKey:  fullKey,
		SmallBlobKey: smallKey,
		FileID:       fileID,
	}

	modified, err := s.categories.PushItems(ctx, ref, []models.FileRef{file})
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		return nil, apperr.NotFound("category not found")
	}

	if creditGated {
		if err := s.clients.DeductCredit(ctx, clientID, credits); err != nil {
			return nil, err
		}
	}

	return &file, nil
}

// Delete removes a file's blobs and then its record from the category.
func (s *FileService) Delete(ctx context.Context, rawRef, fileID string) error {
	ref, err := models.ParseCategoryRef(rawRef)
	if err != nil {
		return apperr.InvalidArgument("invalid category id")
	}
	if fileID == "" {
		return apperr.InvalidArgument("missing file id")
	}

	category, err := s.categories.FindByRef(ctx, ref)
	if err != nil {
		return err
	}

	var file *models.FileRef
	for i := range category.Items {
		if category.Items[i].FileID == fileID {
			file = &category.Items[i]
			break
		}
	}
	if file == nil {
		return apperr.Internal("failed to retrieve file from database")
	}
	if file.FullBlobKey == "" || file.SmallBlobKey == "" {
		return apperr.Internal("file record is missing storage keys")
	}

	if err := s.blobs.Delete(ctx, file.FullBlobKey); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, file.SmallBlobKey); err != nil {
		return err
	}

	modified, err := s.categories.PullItem(ctx, ref, fileID)
	if err != nil {
		return err
	}
	if modified == 0 {
		return apperr.NotFound("file not found in category")
	}
	return nil
}

// Rename changes a file's display name in place.
func (s *FileService) Rename(ctx context.Context, rawRef, fileID, name string) error {
	ref, err := models.ParseCategoryRef(rawRef)
	if err != nil {
		return apperr.InvalidArgument("invalid category id")
	}
	if fileID == "" {
		return apperr.InvalidArgument("missing file id")
	}
	if name == "" {
		return apperr.InvalidArgument("missing file name")
	}

	modified, err := s.categories.SetItemName(ctx, ref, fileID, name)
	if err != nil {
		return err
	}
	if modified == 0 {
		return apperr.NotFound("file not found in category")
	}
	return nil
}

// ListForClient returns every file owned by the client across all categories.
func (s *FileService) ListForClient(ctx context.Context, clientID string) ([]models.FileRef, error) {
	if _, err := primitive.ObjectIDFromHex(clientID); err != nil {
		return nil, apperr.InvalidArgument("invalid or missing client id")
	}
	return s.categories.FilesForClient(ctx, clientID)
}
