package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorServiceCreate(t *testing.T) {
	svc := NewAuthorService(newFakeRepositories())

	author, err := svc.Create("Jane Doe")
	require.NoError(t, err)
	assert.NotEmpty(t, author.ID)
	assert.Equal(t, "Jane Doe", author.Name)

	got, err := svc.Get(author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
}

func TestAuthorServiceCreateBlankName(t *testing.T) {
	svc := NewAuthorService(newFakeRepositories())

	_, err := svc.Create("   ")
	require.Error(t, err)
	assert.True(t, IsInputError(err))
}

func TestAuthorServiceGetNotFound(t *testing.T) {
	svc := NewAuthorService(newFakeRepositories())

	_, err := svc.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorServiceUpdate(t *testing.T) {
	svc := NewAuthorService(newFakeRepositories())

	author, err := svc.Create("Jane Doe")
	require.NoError(t, err)

	renamed, err := svc.Update(author.ID, "Jane Smith")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", renamed.Name)

	got, err := svc.Get(author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.Name)
}

func TestAuthorServiceUpdatePropagatesErrors(t *testing.T) {
	svc := NewAuthorService(newFakeRepositories())

	_, err := svc.Update("missing", "Jane")
	require.ErrorIs(t, err, ErrNotFound)

	author, err := svc.Create("Jane Doe")
	require.NoError(t, err)

	_, err = svc.Update(author.ID, " ")
	require.Error(t, err)
	assert.True(t, IsInputError(err))
}

func TestAuthorServiceSearch(t *testing.T) {
	svc := NewAuthorService(newFakeRepositories())

	_, err := svc.Create("Jane Doe")
	require.NoError(t, err)
	_, err = svc.Create("John Roe")
	require.NoError(t, err)

	results, err := svc.Search("jane")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Doe", results[0].Name)

	// a blank query behaves like List
	results, err = svc.Search("   ")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
