package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/hotaeshwar/crm-sub000/internal/client/domain"
	clientrepo "github.com/hotaeshwar/crm-sub000/internal/client/repository"
	clientservice "github.com/hotaeshwar/crm-sub000/internal/client/service"
	"github.com/hotaeshwar/crm-sub000/internal/clock"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/hotaeshwar/crm-sub000/internal/invoice/number"
	invoicerepo "github.com/hotaeshwar/crm-sub000/internal/invoice/repository"
	invoiceservice "github.com/hotaeshwar/crm-sub000/internal/invoice/service"
	"github.com/hotaeshwar/crm-sub000/internal/payment/domain"
	"github.com/hotaeshwar/crm-sub000/internal/payment/repository"
	"github.com/hotaeshwar/crm-sub000/internal/userctx"
	"github.com/hotaeshwar/crm-sub000/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fixture struct {
	svc      domain.Service
	invoices invoicedomain.Service
	clients  clientdomain.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&clientdomain.Client{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceSequence{},
		&domain.Payment{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}
	clk := clock.NewSystem()

	clientRepo := clientrepo.Provide()
	invoiceRepo := invoicerepo.Provide()

	return &fixture{
		svc: New(Params{
			DB:          dbConn,
			Log:         zap.NewNop(),
			GenID:       node,
			Clock:       clk,
			Repo:        repository.Provide(),
			InvoiceRepo: invoiceRepo,
		}),
		invoices: invoiceservice.New(invoiceservice.Params{
			DB:         dbConn,
			Log:        zap.NewNop(),
			GenID:      node,
			Clock:      clk,
			Repo:       invoiceRepo,
			ClientRepo: clientRepo,
			Numbers:    number.NewGenerator(dbConn),
		}),
		clients: clientservice.New(clientservice.Params{
			DB:    dbConn,
			Log:   zap.NewNop(),
			GenID: node,
			Clock: clk,
			Repo:  clientRepo,
		}),
	}
}

func (f *fixture) newInvoice(t *testing.T, ctx context.Context, amount string) invoicedomain.Invoice {
	t.Helper()

	client, err := f.clients.Create(ctx, clientdomain.CreateClientRequest{Name: "Acme"})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	invoice, err := f.invoices.Create(ctx, invoicedomain.CreateInvoiceRequest{
		ClientID: client.ID.String(),
		Services: []invoicedomain.ServiceItemInput{{Name: "Design", Amount: amount}},
		TaxSpec:  "n/a",
	})
	if err != nil {
		t.Fatalf("failed to create invoice: %v", err)
	}
	return invoice
}

func userContext(userID snowflake.ID) context.Context {
	return userctx.WithUserID(context.Background(), userID)
}

func TestRecordSnapshotsInvoiceAmount(t *testing.T) {
	f := newFixture(t)
	ctx := userContext(100)
	invoice := f.newInvoice(t, ctx, "500")

	payment, err := f.svc.Record(ctx, domain.RecordPaymentRequest{
		InvoiceID: invoice.ID.String(),
		Method:    "bank",
	})
	if err != nil {
		t.Fatalf("failed to record payment: %v", err)
	}
	if !payment.Amount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected snapshot amount 500, got %s", payment.Amount)
	}

	// Editing the invoice afterwards must not change the recorded amount.
	if _, err := f.invoices.Update(ctx, invoicedomain.UpdateInvoiceRequest{
		ID:       invoice.ID.String(),
		Services: []invoicedomain.ServiceItemInput{{Name: "Design", Amount: "900"}},
	}); err != nil {
		t.Fatalf("failed to update invoice: %v", err)
	}

	resp, err := f.svc.List(ctx, domain.ListPaymentRequest{InvoiceID: invoice.ID.String()})
	if err != nil {
		t.Fatalf("failed to list payments: %v", err)
	}
	if len(resp.Payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(resp.Payments))
	}
	if !resp.Payments[0].Amount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected amount still 500, got %s", resp.Payments[0].Amount)
	}
}

func TestRecordRejectsInvalidMethod(t *testing.T) {
	f := newFixture(t)
	ctx := userContext(100)
	invoice := f.newInvoice(t, ctx, "500")

	_, err := f.svc.Record(ctx, domain.RecordPaymentRequest{
		InvoiceID: invoice.ID.String(),
		Method:    "cheque",
	})
	if err != domain.ErrInvalidMethod {
		t.Fatalf("expected ErrInvalidMethod, got %v", err)
	}
}

func TestRecordRequiresInvoice(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Record(userContext(100), domain.RecordPaymentRequest{
		InvoiceID: "999",
		Method:    "cash",
	})
	if err != domain.ErrInvalidInvoice {
		t.Fatalf("expected ErrInvalidInvoice, got %v", err)
	}
}
