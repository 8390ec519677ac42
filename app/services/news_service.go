package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"newsportal/app/models"
	"newsportal/app/repository"
)

// NewsService handles business logic related to news articles.
type NewsService struct {
	repos *repository.Repositories
}

// NewNewsService creates a new news service.
func NewNewsService(repos *repository.Repositories) *NewsService {
	return &NewsService{repos: repos}
}

// Create persists a new visible article attributed to an existing author.
func (s *NewsService) Create(title, body, authorID string) (*models.News, error) {
	if err := ValidateInput(title, body, authorID); err != nil {
		return nil, err
	}

	news := &models.News{
		Title:  title,
		Body:   body,
		Status: true,
		Date:   time.Now(),
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		author, err := tx.Author.GetByID(authorID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("Author ID not found")
		}
		if err != nil {
			return err
		}

		news.AuthorID = author.ID
		news.Author = *author

		if err := news.Validate(); err != nil {
			return err
		}

		return tx.News.Create(news)
	})
	if err != nil {
		return nil, err
	}

	return news, nil
}

// List returns all articles that have not been soft-deleted.
func (s *NewsService) List() ([]models.News, error) {
	return s.repos.News.ListVisible()
}

// Get fetches an article by id, including one that was soft-deleted.
func (s *NewsService) Get(id string) (*models.News, error) {
	if err := ValidateInput(id); err != nil {
		return nil, err
	}

	news, err := s.repos.News.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("News ID not found")
	}
	if err != nil {
		return nil, err
	}

	return news, nil
}

// Update rewrites title, body and attribution of an existing article.
// When the new author id does not resolve, the article keeps its current
// author instead of failing.
func (s *NewsService) Update(id, title, body, authorID string) (*models.News, error) {
	if err := ValidateInput(id, title, body, authorID); err != nil {
		return nil, err
	}

	var news *models.News
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		var err error
		news, err = tx.News.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("News ID not found")
		}
		if err != nil {
			return err
		}

		author, err := tx.Author.GetByID(authorID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// fall back to the article's current author
			author = &news.Author
		} else if err != nil {
			return err
		}

		news.Title = title
		news.Body = body
		news.AuthorID = author.ID
		news.Author = *author
		news.Date = time.Now()

		return tx.News.Update(news)
	})
	if err != nil {
		return nil, err
	}

	return news, nil
}

// Delete soft-deletes an article: the row stays in storage with
// Status=false and disappears from every listing and search.
func (s *NewsService) Delete(id string) error {
	if err := ValidateInput(id); err != nil {
		return err
	}

	return s.repos.Transaction(func(tx *repository.Repositories) error {
		news, err := tx.News.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("News ID not found")
		}
		if err != nil {
			return err
		}

		news.Status = false
		return tx.News.Update(news)
	})
}

// Search filters visible articles by title substring and/or author id.
// Blank filters are ignored; with both blank this is equivalent to List.
func (s *NewsService) Search(title, authorID string) ([]models.News, error) {
	if !IsBlank(title) && !IsBlank(authorID) {
		return s.repos.News.SearchByTitleAndAuthor(title, authorID)
	}
	if !IsBlank(title) {
		return s.repos.News.SearchByTitle(title)
	}
	if !IsBlank(authorID) {
		return s.repos.News.SearchByAuthor(authorID)
	}
	return s.List()
}
