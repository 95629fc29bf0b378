package number

import (
	"context"
	"testing"
	"time"

	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/hotaeshwar/crm-sub000/pkg/db"
	"gorm.io/gorm"
)

func newTestGenerator(t *testing.T) (*Generator, *gorm.DB) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&invoicedomain.InvoiceSequence{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewGenerator(dbConn), dbConn
}

func TestNextStartsAtThousand(t *testing.T) {
	gen, _ := newTestGenerator(t)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	first, err := gen.Next(context.Background(), 100, date)
	if err != nil {
		t.Fatalf("failed to generate number: %v", err)
	}
	if first != "INV-15032024-1000" {
		t.Fatalf("expected INV-15032024-1000, got %q", first)
	}

	second, err := gen.Next(context.Background(), 100, date)
	if err != nil {
		t.Fatalf("failed to generate number: %v", err)
	}
	if second != "INV-15032024-1001" {
		t.Fatalf("expected INV-15032024-1001, got %q", second)
	}
}

func TestNextIndependentPerUserAndDay(t *testing.T) {
	gen, _ := newTestGenerator(t)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	if _, err := gen.Next(context.Background(), 100, date); err != nil {
		t.Fatalf("failed to generate number: %v", err)
	}

	other, err := gen.Next(context.Background(), 200, date)
	if err != nil {
		t.Fatalf("failed to generate number: %v", err)
	}
	if other != "INV-15032024-1000" {
		t.Fatalf("expected other user to start at 1000, got %q", other)
	}

	nextDay, err := gen.Next(context.Background(), 100, date.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("failed to generate number: %v", err)
	}
	if nextDay != "INV-16032024-1000" {
		t.Fatalf("expected next day to start at 1000, got %q", nextDay)
	}
}

func TestSuffixWidensPastNineThousand(t *testing.T) {
	gen, dbConn := newTestGenerator(t)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	if _, err := gen.Next(context.Background(), 100, date); err != nil {
		t.Fatalf("failed to generate number: %v", err)
	}
	err := dbConn.Exec(
		"UPDATE invoice_sequences SET counter = 9000 WHERE user_id = ? AND day = ?",
		100, "15032024",
	).Error
	if err != nil {
		t.Fatalf("failed to advance counter: %v", err)
	}

	got, err := gen.Next(context.Background(), 100, date)
	if err != nil {
		t.Fatalf("failed to generate number: %v", err)
	}
	if got != "INV-15032024-10000" {
		t.Fatalf("expected five-digit suffix, got %q", got)
	}
}
