package repository

import (
	"gorm.io/gorm"

	"newsportal/app/models"
)

// AuthorRepository defines the interface for author-related database operations
type AuthorRepository interface {
	Create(author *models.Author) error
	GetByID(id string) (*models.Author, error)
	Update(author *models.Author) error
	List() ([]models.Author, error)
	SearchByName(name string) ([]models.Author, error)
}

// NewsRepository defines the interface for news-related database operations.
// All listing and search operations exclude soft-deleted articles.
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id string) (*models.News, error)
	Update(news *models.News) error
	ListVisible() ([]models.News, error)
	SearchByTitle(title string) ([]models.News, error)
	SearchByAuthor(authorID string) ([]models.News, error)
	SearchByTitleAndAuthor(title, authorID string) ([]models.News, error)
}

// ImageRepository defines the interface for image-related database operations
type ImageRepository interface {
	Create(image *models.Image) error
	GetByID(id string) (*models.Image, error)
	Update(image *models.Image) error
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	db     *gorm.DB
	Author AuthorRepository
	News   NewsRepository
	Image  ImageRepository
	User   UserRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:     db,
		Author: NewAuthorRepository(db),
		News:   NewNewsRepository(db),
		Image:  NewImageRepository(db),
		User:   NewUserRepository(db),
	}
}

// Transaction runs fn with a repository set bound to a single database
// transaction. The transaction is committed when fn returns nil and rolled
// back otherwise, so multi-step writes are either fully applied or not at
// all.
func (r *Repositories) Transaction(fn func(tx *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
