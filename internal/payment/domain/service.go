package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hotaeshwar/crm-sub000/pkg/db/pagination"
)

type RecordPaymentRequest struct {
	InvoiceID   string
	Method      string
	PaymentDate time.Time
}

type ListPaymentRequest struct {
	PageToken string
	PageSize  int32
	InvoiceID string
}

type ListPaymentResponse struct {
	pagination.PageInfo
	Payments []Payment `json:"payments"`
}

type DeletePaymentRequest struct {
	ID string
}

type Service interface {
	Record(context.Context, RecordPaymentRequest) (Payment, error)
	List(context.Context, ListPaymentRequest) (ListPaymentResponse, error)
	Delete(context.Context, DeletePaymentRequest) error
}

var (
	ErrInvalidUser    = errors.New("invalid_user")
	ErrInvalidInvoice = errors.New("invalid_invoice")
	ErrInvalidMethod  = errors.New("invalid_method")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)

// ParseMethod validates a payment method value.
func ParseMethod(raw string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(raw))) {
	case MethodBank:
		return MethodBank, nil
	case MethodCash:
		return MethodCash, nil
	case MethodUPI:
		return MethodUPI, nil
	case MethodCard:
		return MethodCard, nil
	default:
		return "", ErrInvalidMethod
	}
}
