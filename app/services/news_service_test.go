package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/app/models"
	"newsportal/app/repository"
)

func newsFixture(t *testing.T) (*NewsService, *AuthorService, *repository.Repositories) {
	t.Helper()
	repos := newFakeRepositories()
	return NewNewsService(repos), NewAuthorService(repos), repos
}

func TestNewsServiceCreate(t *testing.T) {
	news, authors, _ := newsFixture(t)

	author, err := authors.Create("Jane Doe")
	require.NoError(t, err)

	article, err := news.Create("Breaking", "Something happened.", author.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, article.ID)
	assert.True(t, article.Status)
	assert.False(t, article.Date.IsZero())
	assert.Equal(t, author.ID, article.AuthorID)
}

func TestNewsServiceCreateValidation(t *testing.T) {
	news, authors, _ := newsFixture(t)

	author, err := authors.Create("Jane Doe")
	require.NoError(t, err)

	_, err = news.Create("", "body", author.ID)
	require.Error(t, err)
	assert.True(t, IsInputError(err))

	_, err = news.Create("title", " ", author.ID)
	require.Error(t, err)
	assert.True(t, IsInputError(err))

	_, err = news.Create("title", "body", "missing-author")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewsServiceUpdate(t *testing.T) {
	news, authors, _ := newsFixture(t)

	jane, err := authors.Create("Jane Doe")
	require.NoError(t, err)
	john, err := authors.Create("John Roe")
	require.NoError(t, err)

	article, err := news.Create("Breaking", "Original body.", jane.ID)
	require.NoError(t, err)

	updated, err := news.Update(article.ID, "Corrected", "New body.", john.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corrected", updated.Title)
	assert.Equal(t, "New body.", updated.Body)
	assert.Equal(t, john.ID, updated.AuthorID)
}

func TestNewsServiceUpdateKeepsAuthorWhenNewOneMissing(t *testing.T) {
	news, authors, _ := newsFixture(t)

	jane, err := authors.Create("Jane Doe")
	require.NoError(t, err)

	article, err := news.Create("Breaking", "Body.", jane.ID)
	require.NoError(t, err)

	updated, err := news.Update(article.ID, "Breaking", "Body.", "missing-author")
	require.NoError(t, err)
	assert.Equal(t, jane.ID, updated.AuthorID)
}

func TestNewsServiceUpdateNotFound(t *testing.T) {
	news, authors, _ := newsFixture(t)

	author, err := authors.Create("Jane Doe")
	require.NoError(t, err)

	_, err = news.Update("missing", "t", "b", author.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewsServiceSoftDelete(t *testing.T) {
	news, authors, repos := newsFixture(t)

	author, err := authors.Create("Jane Doe")
	require.NoError(t, err)

	article, err := news.Create("Breaking", "Body.", author.ID)
	require.NoError(t, err)

	require.NoError(t, news.Delete(article.ID))

	// gone from listing and search
	visible, err := news.List()
	require.NoError(t, err)
	assert.Empty(t, visible)

	results, err := news.Search("Breaking", "")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = news.Search("", author.ID)
	require.NoError(t, err)
	assert.Empty(t, results)

	// but the row still exists with status=false
	stored, err := repos.News.GetByID(article.ID)
	require.NoError(t, err)
	assert.False(t, stored.Status)
}

func TestNewsServiceDeleteNotFound(t *testing.T) {
	news, _, _ := newsFixture(t)

	err := news.Delete("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewsServiceSearch(t *testing.T) {
	news, authors, _ := newsFixture(t)

	jane, err := authors.Create("Jane Doe")
	require.NoError(t, err)
	john, err := authors.Create("John Roe")
	require.NoError(t, err)

	_, err = news.Create("Local Election Results", "Body.", jane.ID)
	require.NoError(t, err)
	_, err = news.Create("Weather Warning", "Body.", jane.ID)
	require.NoError(t, err)
	_, err = news.Create("Election Fallout", "Body.", john.ID)
	require.NoError(t, err)

	// title only, case-insensitive substring
	results, err := news.Search("election", "")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// author only
	results, err = news.Search("", jane.ID)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	for _, n := range results {
		assert.Equal(t, jane.ID, n.AuthorID)
	}

	// both filters combine with AND
	results, err = news.Search("election", jane.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Local Election Results", results[0].Title)

	// both blank is equivalent to List
	all, err := news.List()
	require.NoError(t, err)
	results, err = news.Search("  ", "")
	require.NoError(t, err)
	assert.ElementsMatch(t, titlesOf(all), titlesOf(results))
}

func titlesOf(news []models.News) []string {
	titles := make([]string, 0, len(news))
	for _, n := range news {
		titles = append(titles, n.Title)
	}
	return titles
}
