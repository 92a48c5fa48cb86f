package roster

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientRepo "wellbook/database/repository/client"
	providerRepo "wellbook/database/repository/provider"
	"wellbook/models"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProviders(t *testing.T) {
	path := writeFile(t, "providers.csv",
		"id,name,categories\n"+
			"1,Dr. A,anxiety;stress\n"+
			"2,Dr. B,grief\n")

	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)
	registry := providerRepo.NewMemoryRegistry()

	count, err := LoadProviders(path, registry, fakeClock{now: now})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	p, err := registry.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Dr. A", p.Name)
	assert.Equal(t, []string{"anxiety", "stress"}, p.Categories)

	// Three hourly slots from 09:00 the next day, ids derived from the
	// provider id.
	require.Len(t, p.Slots, 3)
	wantStart := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	for i, slot := range p.Slots {
		assert.Equal(t, 100+i, slot.ID)
		assert.True(t, slot.StartTime.Equal(wantStart.Add(time.Duration(i)*time.Hour)))
		assert.Equal(t, models.SlotAvailable, slot.Status)
	}

	p2, err := registry.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, 200, p2.Slots[0].ID)
}

func TestLoadProvidersBadRows(t *testing.T) {
	registry := providerRepo.NewMemoryRegistry()
	clock := fakeClock{now: time.Now()}

	_, err := LoadProviders(filepath.Join(t.TempDir(), "missing.csv"), registry, clock)
	require.Error(t, err)

	badID := writeFile(t, "bad.csv", "id,name,categories\nx,Dr. A,anxiety\n")
	_, err = LoadProviders(badID, registry, clock)
	require.Error(t, err)

	dup := writeFile(t, "dup.csv", "id,name,categories\n1,Dr. A,anxiety\n1,Dr. B,grief\n")
	count, err := LoadProviders(dup, registry, clock)
	require.ErrorIs(t, err, providerRepo.ErrDuplicateProvider)
	assert.Equal(t, 1, count)
}

func TestLoadClients(t *testing.T) {
	path := writeFile(t, "clients.csv", "id,name\n101,Alice\n102,Bob\n")

	repo := clientRepo.NewMemoryRepo()
	count, err := LoadClients(path, repo)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	alice, err := repo.GetByID(101)
	require.NoError(t, err)
	assert.Equal(t, "Alice", alice.Name)
}

func TestDefaultClients(t *testing.T) {
	defaults := DefaultClients()
	require.Len(t, defaults, 2)
	assert.Equal(t, 101, defaults[0].ID)
	assert.Equal(t, 102, defaults[1].ID)
}
