package srixml

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"dguaman/sri-facturas/internal/classifier"
	"dguaman/sri-facturas/internal/models"
	"dguaman/sri-facturas/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ParsePurchase extracts a purchase-profile invoice record from one document
// payload. The record gets a locally-unique id and an expense category.
// Any failure is an ordinary error; callers treat it as "skip this document".
func ParsePurchase(payload string) (*models.InvoiceRecord, error) {
	rec, err := extract(payload)
	if err != nil {
		return nil, err
	}

	rec.ID = localID(rec.RUC)
	rec.Category = classifier.Classify(rec.Issuer)

	if rec.Total.IsZero() {
		rec.Total = rec.Subtotal
	}

	log.WithFields(logrus.Fields{
		"ruc":      rec.RUC,
		"issuer":   rec.Issuer,
		"subtotal": rec.Subtotal.StringFixed(2),
		"category": rec.Category,
	}).Debug("Parsed purchase invoice")

	return rec, nil
}

// ParseSales extracts a sales-profile invoice record: buyer fields, document
// number and line item descriptions are preserved, no category is assigned.
func ParseSales(payload string) (*models.InvoiceRecord, error) {
	rec, err := extract(payload)
	if err != nil {
		return nil, err
	}

	doc := Unwrap(payload)
	rec.DocumentNumber = documentNumber(doc)
	rec.BuyerName = TagValue(doc, "razonSocialComprador")
	rec.BuyerRUC = TagValue(doc, "identificacionComprador")
	rec.Description = joinDescriptions(TagValues(doc, "descripcion"))

	// A missing total is grossed up from the subtotal using the VAT rate.
	if rec.Total.IsZero() {
		factor := decimal.NewFromInt(1).Add(rec.VATRate.Div(decimal.NewFromInt(100)))
		rec.Total = rec.Subtotal.Mul(factor).Round(2)
	}

	log.WithFields(logrus.Fields{
		"ruc":      rec.RUC,
		"document": rec.DocumentNumber,
		"subtotal": rec.Subtotal.StringFixed(2),
	}).Debug("Parsed sales invoice")

	return rec, nil
}

// extract runs the steps both profiles share: envelope unwrapping, the
// document-type gate, field extraction with fallback chains, and the
// validity gate.
func extract(payload string) (*models.InvoiceRecord, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, &parsererror.InvalidPayloadError{Msg: "empty payload"}
	}

	doc := Unwrap(payload)

	// A present-but-foreign document type code is a rejection; absence is not.
	if code := TagValue(doc, "codDoc"); code != "" && code != models.DocTypeInvoice {
		return nil, &parsererror.WrongDocumentTypeError{Code: code}
	}

	rec := &models.InvoiceRecord{
		RUC:       FirstTagValue(doc, "ruc", "rucEmisor"),
		Issuer:    FirstTagValue(doc, "razonSocial", "razonSocialEmisor", "denominacion"),
		IssueDate: NormalizeDate(TagValue(doc, "fechaEmision")),
		Subtotal:  models.ParseAmount(TagValue(doc, "totalSinImpuestos")),
		Total:     models.ParseAmount(TagValue(doc, "importeTotal")),
		VATRate:   maxVATRate(doc),
		Receipts:  1,
	}

	if !rec.IsValid() {
		return nil, &parsererror.ValidationError{Reason: "empty RUC or non-positive subtotal"}
	}
	return rec, nil
}

// NormalizeDate rewrites dd/mm/yyyy dates to zero-padded yyyy-mm-dd.
// Anything without a slash passes through unchanged.
func NormalizeDate(date string) string {
	if !strings.Contains(date, "/") {
		return date
	}
	fields := strings.Split(date, "/")
	if len(fields) != 3 {
		return date
	}
	day, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return date
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// maxVATRate collects every tarifa occurrence across the line items and
// returns the highest value seen, zero if there are none.
func maxVATRate(doc string) decimal.Decimal {
	maxRate := decimal.Zero
	for _, raw := range TagValues(doc, "tarifa") {
		rate := models.ParseAmount(raw)
		if rate.GreaterThan(maxRate) {
			maxRate = rate
		}
	}
	return maxRate
}

// documentNumber joins establishment, emission point and sequence codes
// with hyphens, but only when all three are present.
func documentNumber(doc string) string {
	estab := TagValue(doc, "estab")
	ptoEmi := TagValue(doc, "ptoEmi")
	secuencial := TagValue(doc, "secuencial")
	if estab == "" || ptoEmi == "" || secuencial == "" {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", estab, ptoEmi, secuencial)
}

// joinDescriptions joins trimmed non-empty line item descriptions in
// document order.
func joinDescriptions(items []string) string {
	var kept []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			kept = append(kept, item)
		}
	}
	return strings.Join(kept, ", ")
}

// localID synthesizes a locally-unique identifier for a purchase record.
func localID(ruc string) string {
	return fmt.Sprintf("%s-%d-%04d", ruc, time.Now().UnixMilli(), rand.Intn(10000))
}
