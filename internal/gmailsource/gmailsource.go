// Package gmailsource adapts the Gmail API to the importer's Source
// interface. It is thin network glue: the caller supplies an already
// authenticated HTTP client and a ready search query; there are no retries
// and no token handling here.
package gmailsource

import (
	"context"
	"fmt"
	"net/http"

	"dguaman/sri-facturas/internal/importer"
	"dguaman/sri-facturas/internal/parts"

	"github.com/sirupsen/logrus"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Client implements importer.Source over the Gmail API.
type Client struct {
	svc        *gmail.Service
	user       string
	query      string
	maxResults int64
}

// New creates a Gmail-backed source. user is the Gmail user id ("me" for
// the authenticated account), query a complete Gmail search expression.
func New(ctx context.Context, httpClient *http.Client, user, query string, maxResults int64) (*Client, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("error creating Gmail service: %w", err)
	}
	if user == "" {
		user = "me"
	}
	if maxResults <= 0 {
		maxResults = 100
	}
	return &Client{svc: svc, user: user, query: query, maxResults: maxResults}, nil
}

// Search lists candidate messages matching the configured query.
func (c *Client) Search(ctx context.Context) ([]importer.MessageRef, error) {
	resp, err := c.svc.Users.Messages.List(c.user).Q(c.query).MaxResults(c.maxResults).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}

	refs := make([]importer.MessageRef, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		refs = append(refs, importer.MessageRef{ID: m.Id})
	}

	log.WithFields(logrus.Fields{
		"query": c.query,
		"count": len(refs),
	}).Debug("Listed candidate messages")

	return refs, nil
}

// Message retrieves the full detail of one message and converts its MIME
// tree into the importer's part representation.
func (c *Client) Message(ctx context.Context, id string) (*importer.Message, error) {
	msg, err := c.svc.Users.Messages.Get(c.user, id).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("error retrieving message %s: %w", id, err)
	}
	return &importer.Message{ID: msg.Id, Payload: convertPart(msg.Payload)}, nil
}

// Attachment retrieves attachment content as URL-safe base64 text, exactly
// as the Gmail API delivers it.
func (c *Client) Attachment(ctx context.Context, messageID, attachmentID string) (string, error) {
	att, err := c.svc.Users.Messages.Attachments.Get(c.user, messageID, attachmentID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("error retrieving attachment: %w", err)
	}
	return att.Data, nil
}

// convertPart maps a Gmail MIME part tree onto parts.Part, preserving
// document order.
func convertPart(p *gmail.MessagePart) *parts.Part {
	if p == nil {
		return nil
	}
	converted := &parts.Part{
		Filename: p.Filename,
		MimeType: p.MimeType,
	}
	if p.Body != nil && p.Body.AttachmentId != "" {
		converted.Body = &parts.Body{AttachmentID: p.Body.AttachmentId}
	}
	for _, child := range p.Parts {
		converted.Parts = append(converted.Parts, convertPart(child))
	}
	return converted
}
