// Package importer sequences the batch import of invoice documents from a
// message source: search, per-message extraction and parsing, classification
// and deduplication, with incremental progress reporting.
package importer

import (
	"context"
	"fmt"

	"dguaman/sri-facturas/internal/dedup"
	"dguaman/sri-facturas/internal/models"
	"dguaman/sri-facturas/internal/parts"
	"dguaman/sri-facturas/internal/srixml"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// MessageRef identifies one candidate message.
type MessageRef struct {
	ID string
}

// Message is the retrieved detail of one candidate message.
type Message struct {
	ID      string
	Payload *parts.Part
}

// Source supplies candidate messages and their attachment contents. It is
// external glue: implementations do the network work, the importer only
// sequences calls.
type Source interface {
	// Search returns the candidate message list.
	Search(ctx context.Context) ([]MessageRef, error)
	// Message retrieves the full detail of one message.
	Message(ctx context.Context, id string) (*Message, error)
	// Attachment retrieves attachment content as URL-safe base64 text.
	Attachment(ctx context.Context, messageID, attachmentID string) (string, error)
}

// Step names one phase of the import process.
type Step string

const (
	StepSearching  Step = "searching"
	StepProcessing Step = "processing"
	StepDone       Step = "done"
)

// Progress is one event on the caller-supplied progress sink. Events are
// emitted synchronously and in order.
type Progress struct {
	Step    Step
	Message string
	Current int
	Total   int
}

// ProgressFunc receives progress events. A nil sink disables reporting.
type ProgressFunc func(Progress)

// Result is the overall outcome of one batch run.
type Result struct {
	Records []models.InvoiceRecord
	Total   int
	Errors  int
	Message string
}

// messageOutcome is the per-message result: either the records extracted
// from it, or the id of a message whose retrieval failed.
type messageOutcome struct {
	records  []models.InvoiceRecord
	failedID string
}

// Importer runs batch imports against one source.
type Importer struct {
	source    Source
	sourceTag string
}

// New creates an Importer. sourceTag is stamped on every record as its
// origin channel.
func New(source Source, sourceTag string) *Importer {
	if sourceTag == "" {
		sourceTag = models.SourceGmail
	}
	return &Importer{source: source, sourceTag: sourceTag}
}

// Run executes one batch import. Messages are processed strictly
// sequentially so that progress events stay ordered and the source is
// never hit in parallel. A failure on one message never aborts the batch.
func (im *Importer) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	notify := func(p Progress) {
		if progress != nil {
			progress(p)
		}
	}

	notify(Progress{Step: StepSearching, Message: "Buscando facturas electrónicas..."})

	refs, err := im.source.Search(ctx)
	if err != nil {
		return nil, fmt.Errorf("error searching for candidate messages: %w", err)
	}

	if len(refs) == 0 {
		msg := "No se encontraron correos con facturas"
		notify(Progress{Step: StepDone, Message: msg})
		return &Result{Records: []models.InvoiceRecord{}, Message: msg}, nil
	}

	var collected []models.InvoiceRecord
	var failedIDs []string

	for i, ref := range refs {
		notify(Progress{
			Step:    StepProcessing,
			Message: fmt.Sprintf("Procesando mensaje %d de %d", i+1, len(refs)),
			Current: i + 1,
			Total:   len(refs),
		})

		outcome := im.processMessage(ctx, ref.ID)
		if outcome.failedID != "" {
			failedIDs = append(failedIDs, outcome.failedID)
			continue
		}
		collected = append(collected, outcome.records...)
	}

	records := dedup.Records(collected)

	msg := fmt.Sprintf("Importación completa: %d facturas", len(records))
	if len(failedIDs) > 0 {
		msg = fmt.Sprintf("%s (%d mensajes con errores)", msg, len(failedIDs))
	}
	notify(Progress{Step: StepDone, Message: msg, Current: len(records), Total: len(records)})

	log.WithFields(logrus.Fields{
		"messages": len(refs),
		"records":  len(records),
		"failed":   len(failedIDs),
	}).Info("Batch import finished")

	return &Result{
		Records: records,
		Total:   len(records),
		Errors:  len(failedIDs),
		Message: msg,
	}, nil
}

// processMessage retrieves one message, flattens its part tree and parses
// every XML attachment. Retrieval failures mark the whole message as failed;
// parse failures skip just the offending part.
func (im *Importer) processMessage(ctx context.Context, id string) messageOutcome {
	msg, err := im.source.Message(ctx, id)
	if err != nil {
		log.WithError(err).WithField("message", id).Warn("Failed to retrieve message, skipping")
		return messageOutcome{failedID: id}
	}

	var records []models.InvoiceRecord
	for _, leaf := range parts.Flatten(msg.Payload) {
		if !leaf.IsXML() {
			continue
		}

		data, err := im.source.Attachment(ctx, id, leaf.Body.AttachmentID)
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"message":  id,
				"filename": leaf.Filename,
			}).Warn("Failed to retrieve attachment, skipping message")
			return messageOutcome{failedID: id}
		}

		text, err := parts.DecodeAttachment(data)
		if err != nil {
			log.WithError(err).WithField("filename", leaf.Filename).Debug("Undecodable attachment, skipping part")
			continue
		}

		rec, err := srixml.ParsePurchase(text)
		if err != nil {
			log.WithError(err).WithField("filename", leaf.Filename).Debug("Part did not parse as an invoice, skipping")
			continue
		}

		rec.Source = im.sourceTag
		records = append(records, *rec)
	}

	return messageOutcome{records: records}
}
