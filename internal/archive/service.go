// Package archive exports a period's invoices and then removes them.
package archive

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	exportservice "github.com/hotaeshwar/crm-sub000/internal/export/service"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	paymentdomain "github.com/hotaeshwar/crm-sub000/internal/payment/domain"
	"github.com/hotaeshwar/crm-sub000/internal/userctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidUser   = errors.New("invalid_user")
	ErrInvalidPeriod = errors.New("invalid_period")
)

// Request selects the calendar period to archive. Month zero means the
// whole year.
type Request struct {
	Year  int
	Month time.Month
}

// Result is the exported workbook plus how many invoices were removed.
type Result struct {
	File    exportservice.File
	Deleted int64
}

type Service interface {
	ArchivePeriod(ctx context.Context, req Request) (Result, error)
}

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	InvoiceRepo invoicedomain.Repository
	PaymentRepo paymentdomain.Repository
	Exports     exportservice.Service
}

type service struct {
	db          *gorm.DB
	log         *zap.Logger
	invoiceRepo invoicedomain.Repository
	paymentRepo paymentdomain.Repository
	exports     exportservice.Service
}

func NewService(p Params) Service {
	return &service{
		db:          p.DB,
		log:         p.Log.Named("archive.service"),
		invoiceRepo: p.InvoiceRepo,
		paymentRepo: p.PaymentRepo,
		exports:     p.Exports,
	}
}

// ArchivePeriod exports the period to a workbook first and deletes the
// invoices and their payments only after the export succeeded, so no
// record is lost without a copy.
func (s *service) ArchivePeriod(ctx context.Context, req Request) (Result, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return Result{}, ErrInvalidUser
	}
	if req.Year <= 0 {
		return Result{}, ErrInvalidPeriod
	}
	if req.Month < 0 || req.Month > time.December {
		return Result{}, ErrInvalidPeriod
	}

	var from, to time.Time
	if req.Month == 0 {
		from = time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(1, 0, 0)
	} else {
		from = time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0)
	}

	file, err := s.exports.InvoicesSpreadsheet(ctx, exportservice.SpreadsheetRequest{
		From: from,
		To:   to,
	})
	if err != nil {
		return Result{}, err
	}

	var deleted int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoices, err := s.invoiceRepo.ListByIssueDateRange(ctx, tx, userID, from, to)
		if err != nil {
			return err
		}
		invoiceIDs := make([]snowflake.ID, 0, len(invoices))
		for _, invoice := range invoices {
			invoiceIDs = append(invoiceIDs, invoice.ID)
		}

		if _, err := s.paymentRepo.DeleteByInvoiceIDs(ctx, tx, userID, invoiceIDs); err != nil {
			return err
		}

		count, err := s.invoiceRepo.DeleteByIssueDateRange(ctx, tx, userID, from, to)
		if err != nil {
			return err
		}
		deleted = count
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.log.Info("period archived",
		zap.Int("year", req.Year),
		zap.Int("month", int(req.Month)),
		zap.Int64("deleted", deleted),
	)
	return Result{File: file, Deleted: deleted}, nil
}
