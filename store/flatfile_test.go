package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_WriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "items.txt")
	f := NewFile(path, "ItemID, ItemName, Price, Stock")

	records := [][]string{
		{"101", "Pen", "10.00", "100"},
		{"102", "Notebook", "50.00", "200"},
	}
	require.NoError(t, f.WriteAll(records))
	assert.True(t, f.Exists())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# ItemID, ItemName, Price, Stock\n101,Pen,10.00,100\n102,Notebook,50.00,200\n", string(raw))

	got, err := f.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestFile_ReadLegacyFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.txt")
	legacy := "# CustID, Name, Phone, Email, Address\n1, Rahul, 9876543210, rahul@example.com, Patan\n\n2, Priya, 9876543211, priya@example.com, Ahmedabad\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	got, err := NewFile(path, "").ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"1", "Rahul", "9876543210", "rahul@example.com", "Patan"}, got[0])
	assert.Equal(t, "Priya", got[1][1])
}

func TestFile_ReadMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "absent.txt"), "")

	_, err := f.ReadAll()
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, f.Exists())
}

func TestFile_WriteReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipts.txt")
	f := NewFile(path, "ReceiptID, CustID, Date, TotalAmount")

	require.NoError(t, f.WriteAll([][]string{{"R001", "1", "2024-01-15", "50.00"}, {"R002", "2", "2024-01-15", "5.00"}}))
	require.NoError(t, f.WriteAll([][]string{{"R001", "1", "2024-01-15", "50.00"}}))

	got, err := f.ReadAll()
	require.NoError(t, err)
	assert.Len(t, got, 1)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}
