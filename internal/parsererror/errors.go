// Package parsererror defines the error taxonomy for invoice document parsing.
// Every error here is routine from the orchestrator's point of view: a part
// that fails to parse is skipped, never escalated.
package parsererror

import "fmt"

// ParseError represents a failure to extract a field from a document.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrongDocumentTypeError is returned when a document carries a codDoc that
// is not the invoice code. The document is valid SRI output, just not an
// invoice.
type WrongDocumentTypeError struct {
	Code string
}

func (e *WrongDocumentTypeError) Error() string {
	return fmt.Sprintf("document type %q is not an invoice", e.Code)
}

// ValidationError is returned when a document parsed but the resulting
// record violates the emission invariant (empty RUC or non-positive subtotal).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid invoice record: %s", e.Reason)
}

// InvalidPayloadError is returned when the payload could not be decoded
// into markup at all.
type InvalidPayloadError struct {
	Msg string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid document payload: %s", e.Msg)
}
