package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/hotaeshwar/crm-sub000/internal/client/domain"
	"github.com/hotaeshwar/crm-sub000/internal/clock"
	"github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/hotaeshwar/crm-sub000/internal/invoice/number"
	"github.com/hotaeshwar/crm-sub000/internal/userctx"
	"github.com/hotaeshwar/crm-sub000/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Repo       domain.Repository
	ClientRepo clientdomain.Repository
	Numbers    *number.Generator
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	repo       domain.Repository
	clientRepo clientdomain.Repository
	numbers    *number.Generator
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("invoice.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		clientRepo: p.ClientRepo,
		numbers:    p.Numbers,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return domain.Invoice{}, domain.ErrInvalidUser
	}

	clientID, err := snowflake.ParseString(strings.TrimSpace(req.ClientID))
	if err != nil || clientID == 0 {
		return domain.Invoice{}, domain.ErrInvalidClient
	}
	client, err := s.clientRepo.FindByID(ctx, s.db, userID, clientID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if client == nil {
		return domain.Invoice{}, domain.ErrInvalidClient
	}

	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = s.clock.Now()
	}

	invoice := domain.Invoice{
		ID:          s.genID.Generate(),
		UserID:      userID,
		ClientID:    clientID,
		IssueDate:   issueDate.UTC(),
		DueDate:     req.DueDate,
		Services:    parseServices(req.Services),
		TaxPercent:  domain.ParseTaxSpec(req.TaxSpec).NullPercent(),
		Status:      domain.ParseStatus(req.Status),
		PaymentDays: domain.ParsePaymentTerm(req.PaymentTerm),
		BillType:    domain.ParseBillType(req.BillType),
		Metadata:    datatypes.JSONMap{},
	}
	if invoice.Status == domain.StatusPartial {
		invoice.AmountReceived = domain.ParseAmount(req.AmountReceived)
	}
	invoice.Recompute()

	invoice.Number, err = s.numbers.Next(ctx, userID, invoice.IssueDate)
	if err != nil {
		return domain.Invoice{}, err
	}

	now := s.clock.Now()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		return domain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("number", invoice.Number),
	)
	return invoice, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateInvoiceRequest) (domain.Invoice, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return domain.Invoice{}, domain.ErrInvalidUser
	}

	id, err := parseID(req.ID)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice, err := s.repo.FindByID(ctx, s.db, userID, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}

	if req.ClientID != nil {
		clientID, err := snowflake.ParseString(strings.TrimSpace(*req.ClientID))
		if err != nil || clientID == 0 {
			return domain.Invoice{}, domain.ErrInvalidClient
		}
		client, err := s.clientRepo.FindByID(ctx, s.db, userID, clientID)
		if err != nil {
			return domain.Invoice{}, err
		}
		if client == nil {
			return domain.Invoice{}, domain.ErrInvalidClient
		}
		invoice.ClientID = clientID
	}
	if req.IssueDate != nil {
		invoice.IssueDate = req.IssueDate.UTC()
	}
	if req.ClearDue {
		invoice.DueDate = nil
	} else if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	if req.Services != nil {
		invoice.Services = parseServices(req.Services)
	}
	if req.TaxSpec != nil {
		invoice.TaxPercent = domain.ParseTaxSpec(*req.TaxSpec).NullPercent()
	}
	if req.PaymentTerm != nil {
		invoice.PaymentDays = domain.ParsePaymentTerm(*req.PaymentTerm)
	}
	if req.Status != nil {
		invoice.Status = domain.ParseStatus(*req.Status)
	}
	if req.AmountReceived != nil {
		invoice.AmountReceived = domain.ParseAmount(*req.AmountReceived)
	}
	if req.BillType != nil {
		invoice.BillType = domain.ParseBillType(*req.BillType)
	}

	invoice.Recompute()
	invoice.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, s.db, invoice); err != nil {
		return domain.Invoice{}, err
	}

	return *invoice, nil
}

func (s *Service) List(ctx context.Context, req domain.ListInvoiceRequest) (domain.ListInvoiceResponse, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return domain.ListInvoiceResponse{}, domain.ErrInvalidUser
	}

	filter := domain.ListInvoiceFilter{
		ClientID: strings.TrimSpace(req.ClientID),
	}
	if status := strings.TrimSpace(req.Status); status != "" {
		filter.Status = domain.ParseStatus(status)
	}
	if billType := strings.TrimSpace(req.BillType); billType != "" {
		filter.BillType = domain.ParseBillType(billType)
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, userID, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListInvoiceResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, int(pageSize), func(invoice *domain.Invoice) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        invoice.ID.String(),
			CreatedAt: invoice.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	invoices := make([]domain.Invoice, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		invoices = append(invoices, *item)
	}

	resp := domain.ListInvoiceResponse{Invoices: invoices}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetInvoiceRequest) (domain.Invoice, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return domain.Invoice{}, domain.ErrInvalidUser
	}

	id, err := parseID(req.ID)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice, err := s.repo.FindByID(ctx, s.db, userID, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}

	return *invoice, nil
}

func (s *Service) Delete(ctx context.Context, req domain.DeleteInvoiceRequest) error {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return domain.ErrInvalidUser
	}

	id, err := parseID(req.ID)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, s.db, userID, id)
}

func parseServices(inputs []domain.ServiceItemInput) domain.ServiceItems {
	services := make(domain.ServiceItems, 0, len(inputs))
	for _, input := range inputs {
		services = append(services, domain.ServiceItem{
			Name:   strings.TrimSpace(input.Name),
			Amount: domain.ParseAmount(input.Amount),
		})
	}
	return services
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
