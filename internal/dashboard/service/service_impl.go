package service

import (
	"context"

	clientdomain "github.com/hotaeshwar/crm-sub000/internal/client/domain"
	dashboarddomain "github.com/hotaeshwar/crm-sub000/internal/dashboard/domain"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/hotaeshwar/crm-sub000/internal/userctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	InvoiceRepo invoicedomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	invoiceRepo invoicedomain.Repository
}

func NewService(p Params) dashboarddomain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("dashboard.service"),
		invoiceRepo: p.InvoiceRepo,
	}
}

func (s *Service) Summary(ctx context.Context) (dashboarddomain.Summary, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return dashboarddomain.Summary{}, dashboarddomain.ErrInvalidUser
	}

	invoices, err := s.invoiceRepo.ListAll(ctx, s.db, userID)
	if err != nil {
		return dashboarddomain.Summary{}, err
	}

	var totalClients int64
	err = s.db.WithContext(ctx).
		Model(&clientdomain.Client{}).
		Where("user_id = ?", userID).
		Count(&totalClients).Error
	if err != nil {
		return dashboarddomain.Summary{}, err
	}

	return Aggregate(invoices, totalClients), nil
}
