package repository

import (
	"gorm.io/gorm"

	"newsportal/app/models"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news article in the database
func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID retrieves a news article by its ID regardless of status, so a
// soft-deleted article can still be loaded for editing.
func (r *newsRepository) GetByID(id string) (*models.News, error) {
	var news models.News
	err := r.db.Preload("Author").First(&news, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// Update updates an existing news article in the database
func (r *newsRepository) Update(news *models.News) error {
	return r.db.Save(news).Error
}

// ListVisible retrieves all news articles that have not been soft-deleted
func (r *newsRepository) ListVisible() ([]models.News, error) {
	var news []models.News
	err := r.db.Preload("Author").Where("status = ?", true).Find(&news).Error
	return news, err
}

// SearchByTitle retrieves visible news whose title contains the query,
// case-insensitive.
func (r *newsRepository) SearchByTitle(title string) ([]models.News, error) {
	var news []models.News
	err := r.db.Preload("Author").
		Where("status = ? AND LOWER(title) LIKE LOWER(?)", true, "%"+title+"%").
		Find(&news).Error
	return news, err
}

// SearchByAuthor retrieves visible news written by the given author
func (r *newsRepository) SearchByAuthor(authorID string) ([]models.News, error) {
	var news []models.News
	err := r.db.Preload("Author").
		Where("status = ? AND author_id = ?", true, authorID).
		Find(&news).Error
	return news, err
}

// SearchByTitleAndAuthor combines the title and author filters
func (r *newsRepository) SearchByTitleAndAuthor(title, authorID string) ([]models.News, error) {
	var news []models.News
	err := r.db.Preload("Author").
		Where("status = ? AND LOWER(title) LIKE LOWER(?) AND author_id = ?", true, "%"+title+"%", authorID).
		Find(&news).Error
	return news, err
}
