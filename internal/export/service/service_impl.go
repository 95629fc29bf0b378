// Package service assembles computed invoice records into export files.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/hotaeshwar/crm-sub000/internal/client/domain"
	"github.com/hotaeshwar/crm-sub000/internal/export/pdf"
	"github.com/hotaeshwar/crm-sub000/internal/export/spreadsheet"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/hotaeshwar/crm-sub000/internal/userctx"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UnknownClientLabel replaces the client name when the referenced
// client no longer exists.
const UnknownClientLabel = "Unknown"

const dateLayout = "02/01/2006"

var (
	ErrInvalidUser = errors.New("invalid_user")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)

type InvoicePDFRequest struct {
	InvoiceID string
}

type SpreadsheetRequest struct {
	From time.Time
	To   time.Time
}

// File is a generated export ready to stream to the client.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

type Service interface {
	InvoicePDF(ctx context.Context, req InvoicePDFRequest) (File, error)
	InvoicesSpreadsheet(ctx context.Context, req SpreadsheetRequest) (File, error)
}

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	InvoiceRepo invoicedomain.Repository
	ClientRepo  clientdomain.Repository
	PDF         pdf.Provider
}

type service struct {
	db          *gorm.DB
	log         *zap.Logger
	invoiceRepo invoicedomain.Repository
	clientRepo  clientdomain.Repository
	pdf         pdf.Provider
}

func New(p Params) Service {
	return &service{
		db:          p.DB,
		log:         p.Log.Named("export.service"),
		invoiceRepo: p.InvoiceRepo,
		clientRepo:  p.ClientRepo,
		pdf:         p.PDF,
	}
}

func (s *service) InvoicePDF(ctx context.Context, req InvoicePDFRequest) (File, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return File{}, ErrInvalidUser
	}

	id, err := snowflake.ParseString(strings.TrimSpace(req.InvoiceID))
	if err != nil || id == 0 {
		return File{}, ErrInvalidID
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, s.db, userID, id)
	if err != nil {
		return File{}, err
	}
	if invoice == nil {
		return File{}, ErrNotFound
	}

	client, err := s.clientRepo.FindByID(ctx, s.db, userID, invoice.ClientID)
	if err != nil {
		return File{}, err
	}

	data := buildInvoiceData(invoice, client)
	reader, err := s.pdf.GenerateInvoice(ctx, data)
	if err != nil {
		return File{}, err
	}

	return File{
		Name:        fmt.Sprintf("%s.pdf", invoice.Number),
		ContentType: "application/pdf",
		Content:     reader,
	}, nil
}

func (s *service) InvoicesSpreadsheet(ctx context.Context, req SpreadsheetRequest) (File, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return File{}, ErrInvalidUser
	}

	var invoices []*invoicedomain.Invoice
	var err error
	if req.From.IsZero() && req.To.IsZero() {
		invoices, err = s.invoiceRepo.ListAll(ctx, s.db, userID)
	} else {
		invoices, err = s.invoiceRepo.ListByIssueDateRange(ctx, s.db, userID, req.From, req.To)
	}
	if err != nil {
		return File{}, err
	}

	clients, err := s.loadClients(ctx, userID)
	if err != nil {
		return File{}, err
	}

	rows := make([]spreadsheet.InvoiceRow, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice == nil {
			continue
		}
		rows = append(rows, buildInvoiceRow(invoice, clients[invoice.ClientID]))
	}

	reader, err := spreadsheet.WriteInvoices(rows)
	if err != nil {
		return File{}, err
	}

	return File{
		Name:        fmt.Sprintf("invoices-%s.xlsx", time.Now().UTC().Format("20060102")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     reader,
	}, nil
}

func (s *service) loadClients(ctx context.Context, userID snowflake.ID) (map[snowflake.ID]*clientdomain.Client, error) {
	var rows []clientdomain.Client
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	clients := make(map[snowflake.ID]*clientdomain.Client, len(rows))
	for i := range rows {
		clients[rows[i].ID] = &rows[i]
	}
	return clients, nil
}

// FormatMoney renders an amount with the display currency prefix.
func FormatMoney(amount decimal.Decimal) string {
	return "Rs. " + amount.StringFixed(2)
}

func buildInvoiceData(invoice *invoicedomain.Invoice, client *clientdomain.Client) pdf.InvoiceData {
	clientName := UnknownClientLabel
	clientCompany := ""
	clientEmail := ""
	if client != nil {
		clientName = client.Name
		clientCompany = client.Company
		clientEmail = client.Email
	}

	dueDate := ""
	if invoice.DueDate != nil {
		dueDate = invoice.DueDate.Format(dateLayout)
	}

	taxLabel := "Tax (N/A)"
	if invoice.TaxPercent.Valid {
		taxLabel = fmt.Sprintf("Tax (%s%%)", invoice.TaxPercent.Decimal.String())
	}

	items := make([]pdf.InvoiceItem, 0, len(invoice.Services))
	for _, item := range invoice.Services {
		items = append(items, pdf.InvoiceItem{
			Name:   item.Name,
			Amount: FormatMoney(item.Amount),
		})
	}

	return pdf.InvoiceData{
		Number:         invoice.Number,
		IssueDate:      invoice.IssueDate.Format(dateLayout),
		DueDate:        dueDate,
		Status:         string(invoice.Status),
		BillType:       string(invoice.BillType),
		ClientName:     clientName,
		ClientCompany:  clientCompany,
		ClientEmail:    clientEmail,
		Items:          items,
		Subtotal:       FormatMoney(invoice.Subtotal.Decimal),
		TaxLabel:       taxLabel,
		TaxAmount:      FormatMoney(invoice.TaxAmount),
		Total:          FormatMoney(invoice.EffectiveAmount()),
		AmountReceived: FormatMoney(invoice.AmountReceived),
		Remaining:      FormatMoney(invoice.RemainingAmount),
	}
}

func buildInvoiceRow(invoice *invoicedomain.Invoice, client *clientdomain.Client) spreadsheet.InvoiceRow {
	clientName := UnknownClientLabel
	clientCompany := ""
	if client != nil {
		clientName = client.Name
		clientCompany = client.Company
	}

	dueDate := ""
	if invoice.DueDate != nil {
		dueDate = invoice.DueDate.Format(dateLayout)
	}

	return spreadsheet.InvoiceRow{
		Number:         invoice.Number,
		IssueDate:      invoice.IssueDate.Format(dateLayout),
		DueDate:        dueDate,
		ClientName:     clientName,
		ClientCompany:  clientCompany,
		Status:         string(invoice.Status),
		BillType:       string(invoice.BillType),
		Subtotal:       FormatMoney(invoice.Subtotal.Decimal),
		TaxAmount:      FormatMoney(invoice.TaxAmount),
		Total:          FormatMoney(invoice.EffectiveAmount()),
		AmountReceived: FormatMoney(invoice.AmountReceived),
		Remaining:      FormatMoney(invoice.RemainingAmount),
	}
}
