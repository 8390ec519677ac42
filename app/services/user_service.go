package services

import (
	"errors"
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	"newsportal/app/models"
	"newsportal/app/repository"
)

// UserService handles account registration, profile updates and the
// credential lookup the login flow builds on. It is a pure lookup layer;
// binding the resolved user to a session is the login controller's job.
type UserService struct {
	repos  *repository.Repositories
	images *ImageService
}

// NewUserService creates a new user service.
func NewUserService(repos *repository.Repositories, images *ImageService) *UserService {
	return &UserService{repos: repos, images: images}
}

// Register creates a new account. The role is always USER no matter what
// the request carried, the password is stored as a bcrypt hash, and the
// profile image is saved in the same transaction.
func (s *UserService) Register(file *multipart.FileHeader, name, email, password, password2 string) (*models.User, error) {
	if err := ValidateUser(name, email, password, password2); err != nil {
		return nil, err
	}
	if err := ValidateImage(file); err != nil {
		return nil, err
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if existing, err := tx.User.GetByEmail(email); err == nil && existing != nil {
			return NewInputError("Email is already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		image, err := s.images.saveWith(tx, file)
		if err != nil {
			return err
		}

		user.ImageID = &image.ID
		user.Image = image

		return tx.User.Create(user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Update rewrites an existing account. The password is rehashed even when
// unchanged, the profile image is replaced in place (or created when the
// user never had one), and the role is reset to USER on every edit.
func (s *UserService) Update(file *multipart.FileHeader, id, name, email, password, password2 string) (*models.User, error) {
	if err := ValidateUser(name, email, password, password2); err != nil {
		return nil, err
	}
	if err := ValidateImage(file); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		var err error
		user, err = tx.User.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("User ID not found")
		}
		if err != nil {
			return err
		}

		user.Name = name
		user.Email = email
		if err := user.SetPassword(password); err != nil {
			return err
		}
		user.Role = models.RoleUser

		var image *models.Image
		if user.ImageID != nil {
			image, err = s.images.updateWith(tx, file, *user.ImageID)
		} else {
			image, err = s.images.saveWith(tx, file)
		}
		if err != nil {
			return err
		}

		user.ImageID = &image.ID
		user.Image = image

		return tx.User.Update(user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Get fetches a user by id with the profile image loaded.
func (s *UserService) Get(id string) (*models.User, error) {
	if err := ValidateInput(id); err != nil {
		return nil, err
	}

	user, err := s.repos.User.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("User ID not found")
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByEmail resolves the login principal by exact email. It has no side
// effects; session state is established by whoever called it.
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	if err := ValidateInput(email); err != nil {
		return nil, err
	}

	user, err := s.repos.User.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// RecordLogin stamps the time of a successful login.
func (s *UserService) RecordLogin(id string) error {
	return s.repos.Transaction(func(tx *repository.Repositories) error {
		user, err := tx.User.GetByID(id)
		if err != nil {
			return err
		}

		now := time.Now()
		user.LastLogin = &now
		return tx.User.Update(user)
	})
}
