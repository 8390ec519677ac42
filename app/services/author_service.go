package services

import (
	"errors"

	"gorm.io/gorm"

	"newsportal/app/models"
	"newsportal/app/repository"
)

// AuthorService handles business logic related to authors.
type AuthorService struct {
	repos *repository.Repositories
}

// NewAuthorService creates a new author service.
func NewAuthorService(repos *repository.Repositories) *AuthorService {
	return &AuthorService{repos: repos}
}

// Create persists a new author with the given display name.
func (s *AuthorService) Create(name string) (*models.Author, error) {
	if err := ValidateInput(name); err != nil {
		return nil, err
	}

	author := &models.Author{Name: name}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		return tx.Author.Create(author)
	})
	if err != nil {
		return nil, err
	}

	return author, nil
}

// List returns all authors.
func (s *AuthorService) List() ([]models.Author, error) {
	return s.repos.Author.List()
}

// Get fetches an author by id, failing with ErrNotFound when the id does
// not exist. There is no lazy-reference variant; a dangling id can never
// reach a view this way.
func (s *AuthorService) Get(id string) (*models.Author, error) {
	if err := ValidateInput(id); err != nil {
		return nil, err
	}

	author, err := s.repos.Author.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("Author ID not found")
	}
	if err != nil {
		return nil, err
	}

	return author, nil
}

// Update renames the author with the given id. Failures propagate to the
// caller so the form can show them.
func (s *AuthorService) Update(id, name string) (*models.Author, error) {
	if err := ValidateInput(id, name); err != nil {
		return nil, err
	}

	var author *models.Author
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		var err error
		author, err = tx.Author.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("Author ID not found")
		}
		if err != nil {
			return err
		}

		author.Name = name
		return tx.Author.Update(author)
	})
	if err != nil {
		return nil, err
	}

	return author, nil
}

// Search returns authors whose name contains the query, case-insensitive.
// A blank query behaves like List.
func (s *AuthorService) Search(name string) ([]models.Author, error) {
	if IsBlank(name) {
		return s.List()
	}
	return s.repos.Author.SearchByName(name)
}
