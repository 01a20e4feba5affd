package models

// Expense categories
const (
	CategoryHealth    = "Salud"
	CategoryFood      = "Alimentación"
	CategoryTransport = "Transporte"
	CategoryEducation = "Educación"
	CategoryApparel   = "Vestimenta"
	CategoryTourism   = "Turismo"
	CategoryHousing   = "Vivienda"
	CategoryUtilities = "Servicios Básicos"
	CategoryOther     = "Otros"
)

// Record sources
const (
	SourceGmail  = "gmail"
	SourceManual = "manual"
)

// SRI document type codes (codDoc)
const (
	DocTypeInvoice    = "01"
	DocTypeCreditNote = "04"
	DocTypeDebitNote  = "05"
	DocTypeRetention  = "07"
)
