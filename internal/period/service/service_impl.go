package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/hotaeshwar/crm-sub000/internal/client/domain"
	"github.com/hotaeshwar/crm-sub000/internal/clock"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	perioddomain "github.com/hotaeshwar/crm-sub000/internal/period/domain"
	"github.com/hotaeshwar/crm-sub000/internal/userctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UnknownClientLabel is rendered when an invoice references a deleted
// client. A dangling reference is tolerated, never an error.
const UnknownClientLabel = "Unknown"

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Clock       clock.Clock
	InvoiceRepo invoicedomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	clock       clock.Clock
	invoiceRepo invoicedomain.Repository
}

func NewService(p Params) perioddomain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("period.service"),
		clock:       p.Clock,
		invoiceRepo: p.InvoiceRepo,
	}
}

func (s *Service) Month(ctx context.Context, req perioddomain.MonthRequest) (perioddomain.MonthSummary, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return perioddomain.MonthSummary{}, perioddomain.ErrInvalidUser
	}
	if req.Month < time.January || req.Month > time.December || req.Year <= 0 {
		return perioddomain.MonthSummary{}, perioddomain.ErrInvalidPeriod
	}

	from := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	invoices, err := s.invoiceRepo.ListByIssueDateRange(ctx, s.db, userID, from, to)
	if err != nil {
		return perioddomain.MonthSummary{}, err
	}

	return BucketMonth(req.Year, req.Month, invoices), nil
}

func (s *Service) Year(ctx context.Context, req perioddomain.YearRequest) (perioddomain.YearSummary, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return perioddomain.YearSummary{}, perioddomain.ErrInvalidUser
	}
	if req.Year <= 0 {
		return perioddomain.YearSummary{}, perioddomain.ErrInvalidPeriod
	}

	from := time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	invoices, err := s.invoiceRepo.ListByIssueDateRange(ctx, s.db, userID, from, to)
	if err != nil {
		return perioddomain.YearSummary{}, err
	}

	return BucketYear(req.Year, invoices), nil
}

func (s *Service) Day(ctx context.Context, req perioddomain.DayRequest) ([]perioddomain.DayInvoice, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return nil, perioddomain.ErrInvalidUser
	}
	if req.Date.IsZero() {
		return nil, perioddomain.ErrInvalidPeriod
	}

	day := req.Date.UTC()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	invoices, err := s.invoiceRepo.ListByIssueDateRange(ctx, s.db, userID, from, to)
	if err != nil {
		return nil, err
	}

	clients, err := s.loadClients(ctx, userID)
	if err != nil {
		return nil, err
	}

	var statusFilter invoicedomain.PaymentStatus
	if raw := strings.TrimSpace(req.Status); raw != "" {
		statusFilter = invoicedomain.ParseStatus(raw)
	}
	query := strings.ToLower(strings.TrimSpace(req.Query))

	results := make([]perioddomain.DayInvoice, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice == nil {
			continue
		}
		if statusFilter != "" && invoice.Status != statusFilter {
			continue
		}

		name := UnknownClientLabel
		company := ""
		if client, ok := clients[invoice.ClientID.String()]; ok {
			name = client.Name
			company = client.Company
		}

		if query != "" && !matchesQuery(invoice.Number, name, company, query) {
			continue
		}

		results = append(results, perioddomain.DayInvoice{
			Invoice:       *invoice,
			ClientName:    name,
			ClientCompany: company,
		})
	}

	return results, nil
}

func (s *Service) Years(ctx context.Context) ([]int, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return nil, perioddomain.ErrInvalidUser
	}

	invoices, err := s.invoiceRepo.ListAll(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	return DistinctYears(invoices, s.clock.Now()), nil
}

func (s *Service) loadClients(ctx context.Context, userID snowflake.ID) (map[string]clientdomain.Client, error) {
	var rows []clientdomain.Client
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	clients := make(map[string]clientdomain.Client, len(rows))
	for _, row := range rows {
		clients[row.ID.String()] = row
	}
	return clients, nil
}

func matchesQuery(number, clientName, clientCompany, query string) bool {
	return strings.Contains(strings.ToLower(number), query) ||
		strings.Contains(strings.ToLower(clientName), query) ||
		strings.Contains(strings.ToLower(clientCompany), query)
}
