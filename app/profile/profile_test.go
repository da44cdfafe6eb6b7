package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpilot/app/models"
	"stockpilot/app/profile"
	"stockpilot/pkg/storage"
)

func fileManager(t *testing.T) *profile.Manager {
	t.Helper()
	return profile.NewManager(profile.NewFileStore(storage.NewLocal(t.TempDir())))
}

func TestCurrentReturnsDefaultsWhenNothingSaved(t *testing.T) {
	m := fileManager(t)
	p := m.Current(context.Background())
	assert.Equal(t, models.DefaultProfile(), p)
	assert.Equal(t, "John Doe", p.Name)
}

func TestSaveThenCurrentRoundTrips(t *testing.T) {
	m := fileManager(t)
	edited := models.DefaultProfile()
	edited.Name = "Priya Sharma"
	edited.Department = "Operations"

	require.NoError(t, m.Save(context.Background(), edited))
	assert.Equal(t, edited, m.Current(context.Background()))
}

func TestCorruptProfileFallsBackToDefaults(t *testing.T) {
	disk := storage.NewLocal(t.TempDir())
	require.NoError(t, disk.Put("userProfile.json", []byte("{not json")))

	m := profile.NewManager(profile.NewFileStore(disk))
	assert.Equal(t, models.DefaultProfile(), m.Current(context.Background()))
}

func TestSaveOverwritesWholesale(t *testing.T) {
	m := fileManager(t)
	first := models.DefaultProfile()
	first.Bio = "first"
	require.NoError(t, m.Save(context.Background(), first))

	second := models.UserProfile{Name: "Only Name"}
	require.NoError(t, m.Save(context.Background(), second))

	got := m.Current(context.Background())
	assert.Equal(t, "Only Name", got.Name)
	assert.Empty(t, got.Bio, "save replaces, it does not merge")
}
