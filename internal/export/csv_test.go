package export

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dguaman/sri-facturas/internal/models"
)

func TestWriteAndReadRecords(t *testing.T) {
	records := []models.InvoiceRecord{
		{
			ID:        "1790012345001-1",
			Issuer:    "FARMACIAS FYBECA S.A.",
			RUC:       "1790012345001",
			IssueDate: "2025-01-15",
			Subtotal:  decimal.NewFromFloat(100),
			Total:     decimal.NewFromFloat(112),
			VATRate:   decimal.NewFromInt(12),
			Category:  models.CategoryHealth,
			Source:    models.SourceGmail,
			Receipts:  1,
		},
		{
			ID:        "0990123456001-2",
			Issuer:    "COMERCIAL LOS ANDES",
			RUC:       "0990123456001",
			IssueDate: "2025-01-16",
			Subtotal:  decimal.NewFromFloat(55.40),
			Total:     decimal.NewFromFloat(55.40),
			Category:  models.CategoryOther,
			Source:    models.SourceManual,
			Receipts:  1,
		},
	}

	// The target directory does not exist yet; the writer must create it.
	path := filepath.Join(t.TempDir(), "salida", "facturas.csv")
	require.NoError(t, WriteRecordsToCSV(records, path))

	loaded, err := ReadRecordsFromCSV(path)
	require.NoError(t, err)

	require.Len(t, loaded, 2)
	assert.Equal(t, records[0].ID, loaded[0].ID)
	assert.Equal(t, records[0].Issuer, loaded[0].Issuer)
	assert.Equal(t, records[0].Category, loaded[0].Category)
	assert.True(t, records[0].Subtotal.Equal(loaded[0].Subtotal))
	assert.True(t, records[1].Total.Equal(loaded[1].Total))
	assert.Equal(t, records[1].Source, loaded[1].Source)
}

func TestWriteRecordsToCSV_NilRecords(t *testing.T) {
	err := WriteRecordsToCSV(nil, filepath.Join(t.TempDir(), "facturas.csv"))
	assert.Error(t, err)
}

func TestWriteRecordsToCSV_EmptySlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facturas.csv")
	require.NoError(t, WriteRecordsToCSV([]models.InvoiceRecord{}, path))

	loaded, err := ReadRecordsFromCSV(path)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestReadRecordsFromCSV_MissingFile(t *testing.T) {
	_, err := ReadRecordsFromCSV(filepath.Join(t.TempDir(), "no-such.csv"))
	assert.Error(t, err)
}
