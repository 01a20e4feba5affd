// Package dedup removes duplicate invoice records from an ordered sequence.
package dedup

import "dguaman/sri-facturas/internal/models"

// Records drops every record whose composite key (RUC, subtotal, issue date)
// was already seen earlier in the sequence. The first occurrence wins and
// relative order is preserved; records are never mutated.
func Records(records []models.InvoiceRecord) []models.InvoiceRecord {
	seen := make(map[string]struct{}, len(records))
	kept := make([]models.InvoiceRecord, 0, len(records))

	for _, rec := range records {
		key := rec.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, rec)
	}
	return kept
}
