package services

import (
	"errors"
	"io"
	"mime/multipart"

	"gorm.io/gorm"

	"newsportal/app/models"
	"newsportal/app/repository"
)

// ImageService handles storage of profile images as database blobs.
type ImageService struct {
	repos *repository.Repositories
}

// NewImageService creates a new image service.
func NewImageService(repos *repository.Repositories) *ImageService {
	return &ImageService{repos: repos}
}

// Save stores a newly uploaded image. Anything that goes wrong while
// reading the payload collapses into a single InputError; callers cannot
// distinguish the underlying I/O failure.
func (s *ImageService) Save(file *multipart.FileHeader) (*models.Image, error) {
	if err := ValidateImage(file); err != nil {
		return nil, err
	}

	image, err := readUpload(file)
	if err != nil {
		return nil, err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		return tx.Image.Create(image)
	})
	if err != nil {
		return nil, err
	}

	return image, nil
}

// Update overwrites mime, name and content of an existing image row.
func (s *ImageService) Update(file *multipart.FileHeader, imageID string) (*models.Image, error) {
	if err := ValidateImage(file); err != nil {
		return nil, err
	}

	var image *models.Image
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		var err error
		image, err = s.updateWith(tx, file, imageID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return image, nil
}

// saveWith stores a new image through the given repository set, so callers
// can fold the write into a larger transaction.
func (s *ImageService) saveWith(tx *repository.Repositories, file *multipart.FileHeader) (*models.Image, error) {
	if err := ValidateImage(file); err != nil {
		return nil, err
	}

	image, err := readUpload(file)
	if err != nil {
		return nil, err
	}

	if err := tx.Image.Create(image); err != nil {
		return nil, err
	}

	return image, nil
}

func (s *ImageService) updateWith(tx *repository.Repositories, file *multipart.FileHeader, imageID string) (*models.Image, error) {
	if err := ValidateImage(file); err != nil {
		return nil, err
	}

	image, err := tx.Image.GetByID(imageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("Image ID not found")
	}
	if err != nil {
		return nil, err
	}

	fresh, err := readUpload(file)
	if err != nil {
		return nil, err
	}

	image.Mime = fresh.Mime
	image.Name = fresh.Name
	image.Content = fresh.Content

	if err := tx.Image.Update(image); err != nil {
		return nil, err
	}

	return image, nil
}

// readUpload extracts content type, filename and raw bytes from the
// multipart header.
func readUpload(file *multipart.FileHeader) (*models.Image, error) {
	src, err := file.Open()
	if err != nil {
		return nil, NewInputError("The input file is not valid")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, NewInputError("The input file is not valid")
	}

	return &models.Image{
		Mime:    file.Header.Get("Content-Type"),
		Name:    file.Filename,
		Content: content,
	}, nil
}
