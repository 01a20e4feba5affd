// Package mora computes statutory late-payment fines and interest for
// overdue tax obligations. Everything here is a pure function of the
// obligation facts and the configured rates.
package mora

import (
	"fmt"
	"time"

	"dguaman/sri-facturas/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculate produces the penalty breakdown for one overdue obligation.
// Monetary results are rounded to 2 decimals only at the end; per-month
// figures are never rounded so the error does not compound across months.
func Calculate(fact models.ObligationFact, rates models.RateConfig) models.MoraResult {
	calcDate := fact.CalculationDate
	if calcDate.IsZero() {
		calcDate = time.Now()
	}

	daysLate := int(calcDate.Sub(fact.DueDate).Hours() / 24)
	if daysLate <= 0 {
		return models.MoraResult{
			DaysLate:       0,
			Fine:           decimal.Zero,
			Interest:       decimal.Zero,
			TotalPenalty:   decimal.Zero,
			TotalPayable:   fact.TaxDue.Round(2),
			FineDetail:     "La obligación no está vencida",
			InterestDetail: "La obligación no está vencida",
			Notified:       fact.Notified,
		}
	}

	monthsLate := (daysLate + 29) / 30
	months := decimal.NewFromInt(int64(monthsLate))

	fine, fineDetail, undetermined := computeFine(fact, rates, months, monthsLate)
	interest, interestDetail := computeInterest(fact, rates, months, monthsLate)

	totalPenalty := fine.Add(interest)

	return models.MoraResult{
		DaysLate:       daysLate,
		MonthsLate:     monthsLate,
		Fine:           fine.Round(2),
		Interest:       interest.Round(2),
		TotalPenalty:   totalPenalty.Round(2),
		TotalPayable:   fact.TaxDue.Add(totalPenalty).Round(2),
		FineDetail:     fineDetail,
		InterestDetail: interestDetail,
		Notified:       fact.Notified,
		Undetermined:   undetermined,
	}
}

// computeFine dispatches the fine formula by obligation type. The returned
// detail string names the branch and rate actually applied. An undetermined
// result means no fine could be computed, which is not the same as zero.
func computeFine(fact models.ObligationFact, rates models.RateConfig, months decimal.Decimal, monthsLate int) (decimal.Decimal, string, bool) {
	switch {
	case fact.Type.IsVAT():
		if fact.PeriodSales.IsPositive() {
			fine := fact.PeriodSales.Mul(rates.VATWithSalesRate).Mul(months)
			detail := fmt.Sprintf("Multa: %s%% de las ventas del período (%s) por %d mes(es) de atraso",
				rates.VATWithSalesRate.Mul(hundred), fact.PeriodSales.StringFixed(2), monthsLate)
			return fine, detail, false
		}
		detail := fmt.Sprintf("Multa fija de %s por declaración de IVA sin ventas",
			rates.VATWithoutSalesFine.StringFixed(2))
		return rates.VATWithoutSalesFine, detail, false

	case fact.Type.IsIncomeTax():
		if fact.TaxDue.IsPositive() {
			raw := fact.TaxDue.Mul(rates.IncomeWithDueRate).Mul(months)
			detail := fmt.Sprintf("Multa: %s%% del impuesto causado (%s) por %d mes(es) de atraso",
				rates.IncomeWithDueRate.Mul(hundred), fact.TaxDue.StringFixed(2), monthsLate)
			if raw.GreaterThan(fact.TaxDue) {
				detail += ", limitada al 100% del impuesto causado"
				return fact.TaxDue, detail, false
			}
			return raw, detail, false
		}
		if fact.GrossIncome.IsPositive() {
			raw := fact.GrossIncome.Mul(rates.IncomeWithoutDueRate).Mul(months)
			cap := fact.GrossIncome.Mul(decimal.NewFromFloat(0.05))
			detail := fmt.Sprintf("Multa: %s%% de los ingresos brutos (%s) por %d mes(es) de atraso",
				rates.IncomeWithoutDueRate.Mul(hundred), fact.GrossIncome.StringFixed(2), monthsLate)
			if raw.GreaterThan(cap) {
				detail += ", limitada al 5% de los ingresos brutos"
				return cap, detail, false
			}
			return raw, detail, false
		}
		return decimal.Zero, "No hay impuesto causado ni ingresos registrados: la multa no puede determinarse", true

	case fact.Type == models.ObligationFixedAdminFine:
		fine := rates.AdminFineVoluntary
		if fact.Notified {
			fine = rates.AdminFineNotified
		}
		// The flat amount does not grow with the months of delay; the user
		// must see that stated, not infer it.
		detail := fmt.Sprintf("Multa administrativa fija de %s; no se incrementa con los meses de atraso",
			fine.StringFixed(2))
		return fine, detail, false
	}

	return decimal.Zero, "Tipo de obligación desconocido", true
}

// computeInterest applies the monthly interest rate to the tax due. With no
// tax due there is never interest, whatever the obligation type.
func computeInterest(fact models.ObligationFact, rates models.RateConfig, months decimal.Decimal, monthsLate int) (decimal.Decimal, string) {
	if !fact.TaxDue.IsPositive() {
		return decimal.Zero, "Sin impuesto a pagar no se generan intereses"
	}

	rate := rates.InterestVoluntaryPct
	label := "voluntaria"
	if fact.Notified {
		rate = rates.InterestNotifiedPct
		label = "notificada"
	}

	interest := fact.TaxDue.Mul(rate.Div(hundred)).Mul(months)
	detail := fmt.Sprintf("Interés: %s%% mensual (tasa %s) sobre %s por %d mes(es)",
		rate, label, fact.TaxDue.StringFixed(2), monthsLate)
	return interest, detail
}

// NextSurchargeDate returns the calendar date at which monthsLate will next
// increment, found as the remainder to the next 30-day boundary from now.
func NextSurchargeDate(now time.Time, daysLate int) time.Time {
	remainder := 30 - daysLate%30
	if daysLate <= 0 {
		remainder = -daysLate + 30
	}
	return now.AddDate(0, 0, remainder)
}
