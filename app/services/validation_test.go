package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank("x"))
	assert.False(t, IsBlank("  x  "))
}

func TestValidateInput(t *testing.T) {
	require.NoError(t, ValidateInput("a"))
	require.NoError(t, ValidateInput("a", "b", "c"))

	err := ValidateInput("a", "", "c")
	require.Error(t, err)
	assert.True(t, IsInputError(err))

	err = ValidateInput("   ")
	require.Error(t, err)
	assert.True(t, IsInputError(err))
}

func TestValidateImage(t *testing.T) {
	err := ValidateImage(nil)
	require.Error(t, err)
	assert.True(t, IsInputError(err))

	file := newUploadFileHeader(t, "avatar.png", "image/png", []byte{1, 2, 3})
	require.NoError(t, ValidateImage(file))
}
