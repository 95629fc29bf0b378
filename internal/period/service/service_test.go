package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/hotaeshwar/crm-sub000/internal/client/domain"
	"github.com/hotaeshwar/crm-sub000/internal/clock"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	invoicerepo "github.com/hotaeshwar/crm-sub000/internal/invoice/repository"
	perioddomain "github.com/hotaeshwar/crm-sub000/internal/period/domain"
	"github.com/hotaeshwar/crm-sub000/internal/userctx"
	"github.com/hotaeshwar/crm-sub000/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (perioddomain.Service, *gorm.DB) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&clientdomain.Client{}, &invoicedomain.Invoice{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := NewService(Params{
		DB:          dbConn,
		Log:         zap.NewNop(),
		Clock:       clock.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		InvoiceRepo: invoicerepo.Provide(),
	})
	return svc, dbConn
}

func seedInvoice(t *testing.T, dbConn *gorm.DB, id, clientID snowflake.ID, number string, issued time.Time) {
	t.Helper()
	invoice := invoicedomain.Invoice{
		ID:        id,
		UserID:    100,
		ClientID:  clientID,
		Number:    number,
		IssueDate: issued,
		Total:     decimal.NullDecimal{Decimal: decimal.NewFromInt(100), Valid: true},
		Status:    invoicedomain.StatusUnpaid,
	}
	if err := dbConn.Create(&invoice).Error; err != nil {
		t.Fatalf("failed to seed invoice: %v", err)
	}
}

func TestDaySearchMatchesClientFields(t *testing.T) {
	svc, dbConn := newTestService(t)
	ctx := userctx.WithUserID(context.Background(), 100)
	day := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

	client := clientdomain.Client{ID: 7, UserID: 100, Name: "Globex", Company: "Globex Intl"}
	if err := dbConn.Create(&client).Error; err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	seedInvoice(t, dbConn, 1, 7, "INV-10052024-1000", day)
	seedInvoice(t, dbConn, 2, 8, "INV-10052024-1001", day)

	results, err := svc.Day(ctx, perioddomain.DayRequest{Date: day, Query: "globex"})
	if err != nil {
		t.Fatalf("failed to query day: %v", err)
	}
	if len(results) != 1 || results[0].Invoice.ID != 1 {
		t.Fatalf("expected single Globex match, got %+v", results)
	}
}

func TestDayDanglingClientRendersUnknown(t *testing.T) {
	svc, dbConn := newTestService(t)
	ctx := userctx.WithUserID(context.Background(), 100)
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	seedInvoice(t, dbConn, 1, 99, "INV-10052024-1000", day)

	results, err := svc.Day(ctx, perioddomain.DayRequest{Date: day})
	if err != nil {
		t.Fatalf("failed to query day: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(results))
	}
	if results[0].ClientName != UnknownClientLabel {
		t.Fatalf("expected unknown client label, got %q", results[0].ClientName)
	}
}

func TestDayIgnoresOtherDates(t *testing.T) {
	svc, dbConn := newTestService(t)
	ctx := userctx.WithUserID(context.Background(), 100)

	seedInvoice(t, dbConn, 1, 7, "INV-A", time.Date(2024, 5, 10, 23, 0, 0, 0, time.UTC))
	seedInvoice(t, dbConn, 2, 7, "INV-B", time.Date(2024, 5, 11, 1, 0, 0, 0, time.UTC))

	results, err := svc.Day(ctx, perioddomain.DayRequest{Date: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("failed to query day: %v", err)
	}
	if len(results) != 1 || results[0].Invoice.Number != "INV-A" {
		t.Fatalf("expected only same-day invoice, got %+v", results)
	}
}

func TestYearsIncludesCurrentFromClock(t *testing.T) {
	svc, dbConn := newTestService(t)
	ctx := userctx.WithUserID(context.Background(), 100)

	seedInvoice(t, dbConn, 1, 7, "INV-A", time.Date(2022, 5, 10, 0, 0, 0, 0, time.UTC))

	years, err := svc.Years(ctx)
	if err != nil {
		t.Fatalf("failed to list years: %v", err)
	}
	if len(years) != 2 || years[0] != 2024 || years[1] != 2022 {
		t.Fatalf("expected [2024 2022], got %v", years)
	}
}
