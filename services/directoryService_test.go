package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-terminal/models"
	"pos-terminal/store"
)

func newDirectory(t *testing.T, dir string, maxCustomers int) DirectoryService {
	t.Helper()
	d := NewDirectoryService(store.NewFile(filepath.Join(dir, "customers.txt"), CustomersHeader), maxCustomers, discardLogger())
	require.NoError(t, d.Load())
	return d
}

func TestDirectoryService_LoadSeeds(t *testing.T) {
	d := newDirectory(t, t.TempDir(), 100)

	all := d.All()
	require.Len(t, all, 10)
	assert.Equal(t, models.Customer{ID: 1, Name: "Rahul", Phone: "9876543210", Email: "rahul@example.com", Address: "Patan"}, all[0])
}

func TestDirectoryService_Search(t *testing.T) {
	d := newDirectory(t, t.TempDir(), 100)

	got := d.Search("Priya")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got = d.Search("9876543219")
	require.Len(t, got, 1)
	assert.Equal(t, "Asha", got[0].Name)

	got = d.Search("amit@")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)

	assert.Empty(t, d.Search("priya"))
	assert.Len(t, d.Search("example.com"), 10)
}

func TestDirectoryService_Create(t *testing.T) {
	dir := t.TempDir()
	d := newDirectory(t, dir, 100)

	c, err := d.Create(models.CustomerInput{Name: "  Karan ", Phone: "9000000001", Email: "karan@example.com", Address: "Surat"})
	require.NoError(t, err)
	assert.Equal(t, 11, c.ID)
	assert.Equal(t, "Karan", c.Name)

	found, ok := d.FindByID(11)
	require.True(t, ok)
	assert.Equal(t, c, found)

	reloaded := newDirectory(t, dir, 100)
	found, ok = reloaded.FindByID(11)
	require.True(t, ok)
	assert.Equal(t, c, found)
}

func TestDirectoryService_CreateUsesHighestID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "customers.txt"), "# "+CustomersHeader+"\n3,A,1,,X\n40,B,2,,Y\n7,C,3,,Z\n")
	d := newDirectory(t, dir, 100)

	c, err := d.Create(models.CustomerInput{Name: "New", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, 41, c.ID)
}

func TestDirectoryService_CreateValidation(t *testing.T) {
	d := newDirectory(t, t.TempDir(), 100)

	cases := map[string]models.CustomerInput{
		"missing name":  {Phone: "1"},
		"missing phone": {Name: "A"},
		"comma in name": {Name: "Doe, John", Phone: "1"},
		"bad email":     {Name: "A", Phone: "1", Email: "not-an-email"},
		"long phone":    {Name: "A", Phone: "123456789012345"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := d.Create(input)
			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs), "got %v", err)
		})
	}
	assert.Len(t, d.All(), 10)
}

func TestDirectoryService_CreateWhenFull(t *testing.T) {
	d := newDirectory(t, t.TempDir(), 10)

	_, err := d.Create(models.CustomerInput{Name: "A", Phone: "1"})
	assert.ErrorIs(t, err, ErrDirectoryFull)
	assert.Len(t, d.All(), 10)
}

func TestDirectoryService_CreateLeavesDirectoryUnchangedOnSaveError(t *testing.T) {
	dir := t.TempDir()
	d := newDirectory(t, dir, 100)

	// A non-empty directory where the file should be makes the atomic rename fail.
	path := filepath.Join(dir, "customers.txt")
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.MkdirAll(filepath.Join(path, "blocked"), 0o755))

	c, err := d.Create(models.CustomerInput{Name: "Karan", Phone: "9000000001"})
	require.Error(t, err)
	assert.Zero(t, c)
	assert.Len(t, d.All(), 10)
	_, ok := d.FindByID(11)
	assert.False(t, ok)

	require.NoError(t, os.RemoveAll(path))
	c, err = d.Create(models.CustomerInput{Name: "Karan", Phone: "9000000001"})
	require.NoError(t, err)
	assert.Equal(t, 11, c.ID)
}
