// Package pdf renders invoices to PDF documents.
package pdf

import (
	"bytes"
	"context"
	"io"
)

// InvoiceData is the fully-computed invoice record the renderer
// consumes. All money fields are preformatted strings.
type InvoiceData struct {
	Number    string
	IssueDate string
	DueDate   string
	Status    string
	BillType  string

	ClientName    string
	ClientCompany string
	ClientEmail   string

	Items []InvoiceItem

	Subtotal       string
	TaxLabel       string
	TaxAmount      string
	Total          string
	AmountReceived string
	Remaining      string
}

// InvoiceItem is one rendered service line.
type InvoiceItem struct {
	Name   string
	Amount string
}

// Provider renders a computed invoice into a downloadable document.
type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error)
}

// NoOpProvider is used in tests that don't inspect the document bytes.
type NoOpProvider struct{}

func (p *NoOpProvider) GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error) {
	return bytes.NewReader(nil), nil
}
