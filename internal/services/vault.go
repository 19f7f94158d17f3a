package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/crestrepo/photovault/internal/common"
	"github.com/crestrepo/photovault/internal/imagex"
	"github.com/crestrepo/photovault/internal/logging"
	"github.com/crestrepo/photovault/internal/models"
)

// VaultService implements the folder/photo operations on the currently bound
// account. Every mutation is applied in place and persisted through the
// account store before the operation returns; a persist failure is reported
// as an ErrBackend-wrapped error while the in-memory mutation stands.
type VaultService interface {
	// CreateFolder adds an empty folder with a fresh id. The trimmed name must
	// be 1–30 characters and unique within the account, case-insensitively.
	CreateFolder(ctx context.Context, acc *models.Account, name string) (*models.Folder, error)

	// RenameFolder changes a folder's display name. Validation matches
	// CreateFolder except that the uniqueness check excludes the folder
	// being renamed.
	RenameFolder(ctx context.Context, acc *models.Account, folderID, newName string) error

	// DeleteFolder removes the folder and all its photos. Deleting an absent
	// id is a no-op, not an error.
	DeleteFolder(ctx context.Context, acc *models.Account, folderID string) error

	// AddPhotos appends the image files to the folder in input order.
	// Non-image files are skipped silently; a file that cannot be decoded is
	// skipped without rolling back photos already appended, and all such
	// failures come back as one aggregated error.
	AddPhotos(ctx context.Context, acc *models.Account, folderID string, files []imagex.File) ([]*models.Photo, error)

	// DeletePhotosByID removes the photos with the given ids. Unknown ids and
	// an unknown folder are ignored.
	DeletePhotosByID(ctx context.Context, acc *models.Account, folderID string, ids []string) error

	// DeletePhotosByIndex removes the photos at the given positions of the
	// folder's current sequence. The whole batch is resolved against the
	// pre-call sequence, so index shift cannot invalidate later entries.
	DeletePhotosByIndex(ctx context.Context, acc *models.Account, folderID string, indices []int) error

	// GetPhoto is a bounds-checked lookup; nil rather than an error on an
	// out-of-range index or unknown folder.
	GetPhoto(acc *models.Account, folderID string, index int) *models.Photo
}

type vaultService struct {
	accounts AccountService
	logger   logging.Logger
}

func NewVaultService(accounts AccountService, logger logging.Logger) VaultService {
	return &vaultService{accounts: accounts, logger: logger}
}

func (s *vaultService) CreateFolder(ctx context.Context, acc *models.Account, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if err := models.ValidateFolderName(name); err != nil {
		return nil, err
	}
	if acc.FolderByName(name) != nil {
		return nil, common.ErrDuplicateFolderName
	}

	folder := &models.Folder{ID: uuid.NewString(), Name: name, Photos: []*models.Photo{}}
	acc.AddFolder(folder)

	if err := s.accounts.Persist(ctx, acc); err != nil {
		return folder, err
	}
	return folder, nil
}

func (s *vaultService) RenameFolder(ctx context.Context, acc *models.Account, folderID, newName string) error {
	folder := acc.Folder(folderID)
	if folder == nil {
		return common.ErrFolderNotFound
	}

	newName = strings.TrimSpace(newName)
	if err := models.ValidateFolderName(newName); err != nil {
		return err
	}
	if other := acc.FolderByName(newName); other != nil && other.ID != folderID {
		return common.ErrDuplicateFolderName
	}

	folder.Name = newName
	return s.accounts.Persist(ctx, acc)
}

func (s *vaultService) DeleteFolder(ctx context.Context, acc *models.Account, folderID string) error {
	if !acc.RemoveFolder(folderID) {
		return nil
	}
	return s.accounts.Persist(ctx, acc)
}

func (s *vaultService) AddPhotos(ctx context.Context, acc *models.Account, folderID string, files []imagex.File) ([]*models.Photo, error) {
	folder := acc.Folder(folderID)
	if folder == nil {
		return nil, common.ErrFolderNotFound
	}

	var added []*models.Photo
	var errs []error
	for _, file := range files {
		if len(file.Data) == 0 {
			errs = append(errs, fmt.Errorf("%s: empty file", file.Name))
			continue
		}
		if !imagex.IsImage(file.Data) {
			s.logger.Debug(ctx, "skipping non-image upload", "file", file.Name)
			continue
		}
		photo := &models.Photo{
			ID:      uuid.NewString(),
			Name:    file.Name,
			DataURL: imagex.EncodeDataURL(file.Data),
		}
		folder.AddPhoto(photo)
		added = append(added, photo)
	}

	if len(added) > 0 {
		if err := s.accounts.Persist(ctx, acc); err != nil {
			errs = append(errs, err)
		}
	}
	return added, errors.Join(errs...)
}

func (s *vaultService) DeletePhotosByID(ctx context.Context, acc *models.Account, folderID string, ids []string) error {
	folder := acc.Folder(folderID)
	if folder == nil {
		return nil
	}
	if folder.RemovePhotosByID(ids) == 0 {
		return nil
	}
	return s.accounts.Persist(ctx, acc)
}

func (s *vaultService) DeletePhotosByIndex(ctx context.Context, acc *models.Account, folderID string, indices []int) error {
	folder := acc.Folder(folderID)
	if folder == nil {
		return nil
	}

	// Resolve every index against the pre-call sequence before anything is
	// removed; the actual deletion is id-addressed.
	ids := make([]string, 0, len(indices))
	for _, idx := range indices {
		if p := folder.Photo(idx); p != nil {
			ids = append(ids, p.ID)
		}
	}
	return s.DeletePhotosByID(ctx, acc, folderID, ids)
}

func (s *vaultService) GetPhoto(acc *models.Account, folderID string, index int) *models.Photo {
	folder := acc.Folder(folderID)
	if folder == nil {
		return nil
	}
	return folder.Photo(index)
}
