package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ObligationType identifies which statutory rule set applies to an
// overdue obligation.
type ObligationType string

const (
	ObligationVATMonthly       ObligationType = "iva_mensual"
	ObligationVATSemiannual    ObligationType = "iva_semestral"
	ObligationIncomeOrdinary   ObligationType = "renta"
	ObligationIncomeSimplified ObligationType = "renta_simplificada"
	ObligationFixedAdminFine   ObligationType = "multa_administrativa"
)

// IsVAT reports whether the obligation is one of the VAT declaration types.
func (t ObligationType) IsVAT() bool {
	return t == ObligationVATMonthly || t == ObligationVATSemiannual
}

// IsIncomeTax reports whether the obligation is one of the income tax types.
func (t ObligationType) IsIncomeTax() bool {
	return t == ObligationIncomeOrdinary || t == ObligationIncomeSimplified
}

// ObligationFact holds everything the caller knows about one overdue
// filing or payment duty. TaxDue of zero means "none owed" for VAT types
// and "unknown" for income tax types.
type ObligationFact struct {
	Type            ObligationType
	DueDate         time.Time
	CalculationDate time.Time // zero value means "now"
	TaxDue          decimal.Decimal
	PeriodSales     decimal.Decimal // VAT types only
	GrossIncome     decimal.Decimal // income tax types only
	Notified        bool            // notified by the tax authority
}

// RateConfig carries the statutory rates and flat amounts the mora engine
// applies. Interest rates are monthly percentages (applied as rate/100);
// fine rates are plain fractions applied directly.
type RateConfig struct {
	InterestVoluntaryPct decimal.Decimal // monthly interest, voluntary payment
	InterestNotifiedPct  decimal.Decimal // monthly interest once notified, >= voluntary
	VATWithSalesRate     decimal.Decimal // fraction of period sales per month late
	VATWithoutSalesFine  decimal.Decimal // flat fine when the period had no sales
	IncomeWithDueRate    decimal.Decimal // fraction of tax due per month late, capped at tax due
	IncomeWithoutDueRate decimal.Decimal // fraction of gross income per month late, capped at 5% of it
	AdminFineVoluntary   decimal.Decimal // flat administrative fine, voluntary
	AdminFineNotified    decimal.Decimal // flat administrative fine once notified
}

// MoraResult is the immutable outcome of one penalty calculation.
// Undetermined marks a fine that could not be computed for lack of facts;
// it is not the same as a fine of zero.
type MoraResult struct {
	DaysLate       int
	MonthsLate     int
	Fine           decimal.Decimal
	Interest       decimal.Decimal
	TotalPenalty   decimal.Decimal
	TotalPayable   decimal.Decimal
	FineDetail     string
	InterestDetail string
	Notified       bool
	Undetermined   bool
}
