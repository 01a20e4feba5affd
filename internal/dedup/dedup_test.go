package dedup

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"dguaman/sri-facturas/internal/models"
)

func record(id, ruc, date string, subtotal float64) models.InvoiceRecord {
	return models.InvoiceRecord{
		ID:        id,
		RUC:       ruc,
		IssueDate: date,
		Subtotal:  decimal.NewFromFloat(subtotal),
	}
}

func TestRecords_FirstWinsStable(t *testing.T) {
	records := []models.InvoiceRecord{
		record("a", "1790012345001", "2025-01-15", 100),
		record("b", "0990123456001", "2025-01-16", 55.40),
		record("c", "1790012345001", "2025-01-15", 100), // duplicate of a
		record("d", "1790012345001", "2025-01-15", 200), // same ruc and date, different amount
	}

	deduped := Records(records)

	if assert.Len(t, deduped, 3) {
		assert.Equal(t, "a", deduped[0].ID)
		assert.Equal(t, "b", deduped[1].ID)
		assert.Equal(t, "d", deduped[2].ID)
	}
}

func TestRecords_Idempotent(t *testing.T) {
	records := []models.InvoiceRecord{
		record("a", "1790012345001", "2025-01-15", 100),
		record("b", "1790012345001", "2025-01-15", 100),
	}

	once := Records(records)
	twice := Records(once)
	assert.Equal(t, once, twice)
}

func TestRecords_Empty(t *testing.T) {
	assert.Empty(t, Records(nil))
	assert.Empty(t, Records([]models.InvoiceRecord{}))
}
