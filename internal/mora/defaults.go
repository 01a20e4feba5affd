package mora

import (
	"dguaman/sri-facturas/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultRates returns the built-in rate table. Callers merge any partial
// configuration overrides over this value; the engine itself never reads
// configuration.
func DefaultRates() models.RateConfig {
	return models.RateConfig{
		InterestVoluntaryPct: decimal.NewFromFloat(1.3),
		InterestNotifiedPct:  decimal.NewFromFloat(1.7),
		VATWithSalesRate:     decimal.NewFromFloat(0.001),
		VATWithoutSalesFine:  decimal.NewFromFloat(31.25),
		IncomeWithDueRate:    decimal.NewFromFloat(0.03),
		IncomeWithoutDueRate: decimal.NewFromFloat(0.001),
		AdminFineVoluntary:   decimal.NewFromFloat(30),
		AdminFineNotified:    decimal.NewFromFloat(62.50),
	}
}
