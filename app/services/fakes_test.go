package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"newsportal/app/models"
	"newsportal/app/repository"
)

// In-memory repository fakes. They mirror the query semantics of the gorm
// implementations closely enough for service-level tests.

type fakeAuthorRepo struct {
	byID map[string]*models.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{byID: make(map[string]*models.Author)}
}

func (r *fakeAuthorRepo) Create(author *models.Author) error {
	if author.ID == "" {
		author.ID = uuid.New().String()
	}
	copied := *author
	r.byID[author.ID] = &copied
	return nil
}

func (r *fakeAuthorRepo) GetByID(id string) (*models.Author, error) {
	author, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *author
	return &copied, nil
}

func (r *fakeAuthorRepo) Update(author *models.Author) error {
	copied := *author
	r.byID[author.ID] = &copied
	return nil
}

func (r *fakeAuthorRepo) List() ([]models.Author, error) {
	var authors []models.Author
	for _, a := range r.byID {
		authors = append(authors, *a)
	}
	return authors, nil
}

func (r *fakeAuthorRepo) SearchByName(name string) ([]models.Author, error) {
	var authors []models.Author
	for _, a := range r.byID {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(name)) {
			authors = append(authors, *a)
		}
	}
	return authors, nil
}

type fakeNewsRepo struct {
	byID map[string]*models.News
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{byID: make(map[string]*models.News)}
}

func (r *fakeNewsRepo) Create(news *models.News) error {
	if news.ID == "" {
		news.ID = uuid.New().String()
	}
	copied := *news
	r.byID[news.ID] = &copied
	return nil
}

func (r *fakeNewsRepo) GetByID(id string) (*models.News, error) {
	news, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *news
	return &copied, nil
}

func (r *fakeNewsRepo) Update(news *models.News) error {
	copied := *news
	r.byID[news.ID] = &copied
	return nil
}

func (r *fakeNewsRepo) ListVisible() ([]models.News, error) {
	var news []models.News
	for _, n := range r.byID {
		if n.Status {
			news = append(news, *n)
		}
	}
	return news, nil
}

func (r *fakeNewsRepo) SearchByTitle(title string) ([]models.News, error) {
	var news []models.News
	for _, n := range r.byID {
		if n.Status && strings.Contains(strings.ToLower(n.Title), strings.ToLower(title)) {
			news = append(news, *n)
		}
	}
	return news, nil
}

func (r *fakeNewsRepo) SearchByAuthor(authorID string) ([]models.News, error) {
	var news []models.News
	for _, n := range r.byID {
		if n.Status && n.AuthorID == authorID {
			news = append(news, *n)
		}
	}
	return news, nil
}

func (r *fakeNewsRepo) SearchByTitleAndAuthor(title, authorID string) ([]models.News, error) {
	var news []models.News
	for _, n := range r.byID {
		if n.Status && n.AuthorID == authorID &&
			strings.Contains(strings.ToLower(n.Title), strings.ToLower(title)) {
			news = append(news, *n)
		}
	}
	return news, nil
}

type fakeImageRepo struct {
	byID map[string]*models.Image
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{byID: make(map[string]*models.Image)}
}

func (r *fakeImageRepo) Create(image *models.Image) error {
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	copied := *image
	r.byID[image.ID] = &copied
	return nil
}

func (r *fakeImageRepo) GetByID(id string) (*models.Image, error) {
	image, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *image
	return &copied, nil
}

func (r *fakeImageRepo) Update(image *models.Image) error {
	copied := *image
	r.byID[image.ID] = &copied
	return nil
}

type fakeUserRepo struct {
	byID map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	copied := *user
	r.byID[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	copied := *user
	r.byID[user.ID] = &copied
	return nil
}

// newFakeRepositories builds a repository set backed entirely by in-memory
// fakes. Transaction runs the callback against the same set.
func newFakeRepositories() *repository.Repositories {
	return &repository.Repositories{
		Author: newFakeAuthorRepo(),
		News:   newFakeNewsRepo(),
		Image:  newFakeImageRepo(),
		User:   newFakeUserRepo(),
	}
}
