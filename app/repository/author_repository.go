package repository

import (
	"gorm.io/gorm"

	"newsportal/app/models"
)

// authorRepository implements the AuthorRepository interface
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates a new author repository instance
func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

// Create creates a new author in the database
func (r *authorRepository) Create(author *models.Author) error {
	return r.db.Create(author).Error
}

// GetByID retrieves an author by ID
func (r *authorRepository) GetByID(id string) (*models.Author, error) {
	var author models.Author
	err := r.db.First(&author, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// Update updates an existing author in the database
func (r *authorRepository) Update(author *models.Author) error {
	return r.db.Save(author).Error
}

// List retrieves all authors
func (r *authorRepository) List() ([]models.Author, error) {
	var authors []models.Author
	err := r.db.Find(&authors).Error
	return authors, err
}

// SearchByName retrieves authors whose name contains the query,
// case-insensitive.
func (r *authorRepository) SearchByName(name string) ([]models.Author, error) {
	var authors []models.Author
	err := r.db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").Find(&authors).Error
	return authors, err
}
