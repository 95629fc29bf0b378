package domain

import (
	"context"
	"errors"
	"time"

	"github.com/hotaeshwar/crm-sub000/pkg/db/pagination"
)

type ServiceItemInput struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type CreateInvoiceRequest struct {
	ClientID    string
	IssueDate   time.Time
	DueDate     *time.Time
	Services    []ServiceItemInput
	TaxSpec     string
	PaymentTerm string
	Status      string
	// AmountReceived is read only when Status is partial.
	AmountReceived string
	BillType       string
}

type UpdateInvoiceRequest struct {
	ID             string
	ClientID       *string
	IssueDate      *time.Time
	DueDate        *time.Time
	ClearDue       bool
	Services       []ServiceItemInput
	TaxSpec        *string
	PaymentTerm    *string
	Status         *string
	AmountReceived *string
	BillType       *string
}

type ListInvoiceRequest struct {
	PageToken string
	PageSize  int32
	Status    string
	BillType  string
	ClientID  string
}

type ListInvoiceFilter struct {
	Status   PaymentStatus
	BillType BillType
	ClientID string
}

type ListInvoiceResponse struct {
	pagination.PageInfo
	Invoices []Invoice `json:"invoices"`
}

type GetInvoiceRequest struct {
	ID string
}

type DeleteInvoiceRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateInvoiceRequest) (Invoice, error)
	Update(context.Context, UpdateInvoiceRequest) (Invoice, error)
	List(context.Context, ListInvoiceRequest) (ListInvoiceResponse, error)
	GetByID(context.Context, GetInvoiceRequest) (Invoice, error)
	Delete(context.Context, DeleteInvoiceRequest) error
}

var (
	ErrInvalidUser   = errors.New("invalid_user")
	ErrInvalidClient = errors.New("invalid_client")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
