// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InvoiceRecord represents one electronic invoice extracted from an SRI
// comprobante document. Purchase-profile records carry a Category; sales-profile
// records carry buyer fields and a document number instead.
type InvoiceRecord struct {
	ID             string          `csv:"ID"`             // Locally-unique id (purchase profile only)
	Issuer         string          `csv:"Issuer"`         // Razon social of the issuer
	RUC            string          `csv:"RUC"`            // Issuer tax id
	IssueDate      string          `csv:"IssueDate"`      // Date in YYYY-MM-DD format
	Subtotal       decimal.Decimal `csv:"Subtotal"`       // Amount before VAT
	Total          decimal.Decimal `csv:"Total"`          // Amount including VAT
	VATRate        decimal.Decimal `csv:"VATRate"`        // Highest VAT percentage seen on the line items, 0 if none
	Category       string          `csv:"Category"`       // Expense category assigned by the classifier
	Source         string          `csv:"Source"`         // Origin channel (gmail, manual, ...)
	DocumentNumber string          `csv:"DocumentNumber"` // estab-ptoEmi-secuencial, empty if incomplete
	BuyerName      string          `csv:"BuyerName"`      // Sales profile only
	BuyerRUC       string          `csv:"BuyerRUC"`       // Sales profile only
	Description    string          `csv:"Description"`    // Joined line item descriptions (sales profile)
	Receipts       int             `csv:"Receipts"`       // Number of receipts this record stands for
}

// Key returns the composite natural key used for deduplication.
// Two records with the same issuer RUC, subtotal and issue date are
// considered the same invoice regardless of where they came from.
func (r *InvoiceRecord) Key() string {
	return fmt.Sprintf("%s|%s|%s", r.RUC, r.Subtotal.StringFixed(2), r.IssueDate)
}

// IsValid reports whether the record satisfies the emission invariant:
// a non-empty tax id and a strictly positive subtotal.
func (r *InvoiceRecord) IsValid() bool {
	return strings.TrimSpace(r.RUC) != "" && r.Subtotal.IsPositive()
}

// ParseAmount converts a string amount to decimal.Decimal, tolerating
// comma decimal separators and stray whitespace. Unparseable input
// yields zero.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", ".")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "$", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
