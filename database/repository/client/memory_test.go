package clientRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellbook/models"
)

func TestRegisterAndLookup(t *testing.T) {
	r := NewMemoryRepo()
	require.NoError(t, r.Register(models.Client{ID: 101, Name: "Alice"}))
	require.NoError(t, r.Register(models.Client{ID: 102, Name: "Bob"}))

	require.Error(t, r.Register(models.Client{ID: 101, Name: "Mallory"}))

	got, err := r.GetByID(101)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = r.GetByID(999)
	require.ErrorIs(t, err, ErrClientNotFound)

	all := r.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, 101, all[0].ID)
	assert.Equal(t, 102, all[1].ID)
}
