package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
	assert.False(t, Role("admin").IsAdmin())
	assert.False(t, Role("").IsAdmin())
}

func TestUserPasswordRoundTrip(t *testing.T) {
	u := &User{Name: "Jane Doe", Email: "jane@example.com"}

	require.NoError(t, u.SetPassword("Pass!12345"))
	assert.NotEqual(t, "Pass!12345", u.Password)
	assert.True(t, u.CheckPassword("Pass!12345"))
	assert.False(t, u.CheckPassword("pass!12345"))
}

func TestUserValidate(t *testing.T) {
	u := &User{Name: "Jane Doe", Email: "jane@example.com", Password: "hash", Role: RoleUser}
	require.NoError(t, u.Validate())

	u.Name = "J"
	assert.Error(t, u.Validate())

	u.Name = "Jane Doe"
	u.Role = "SUPERUSER"
	assert.Error(t, u.Validate())
}

func TestNewsValidate(t *testing.T) {
	n := &News{Title: "Breaking", Body: "Something happened.", AuthorID: "a1"}
	require.NoError(t, n.Validate())

	n.Title = ""
	assert.Error(t, n.Validate())
}
