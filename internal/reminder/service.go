package reminder

import (
	"context"
	"errors"

	"github.com/hotaeshwar/crm-sub000/internal/clock"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/hotaeshwar/crm-sub000/internal/userctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrInvalidUser = errors.New("invalid_user")

// OverdueReport is the overdue set plus the alert latch state after
// folding the set in.
type OverdueReport struct {
	Overdue    []OverdueInvoice `json:"overdue"`
	AlertState AlertState       `json:"alert_state"`
}

type Service interface {
	Overdue(ctx context.Context) (OverdueReport, error)
	MarkAlertFired(ctx context.Context) (AlertState, error)
	MuteAlert(ctx context.Context) (AlertState, error)
	ReplayAlert(ctx context.Context) (AlertState, error)
}

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Clock       clock.Clock
	InvoiceRepo invoicedomain.Repository
	Alerter     *Alerter
}

type service struct {
	db          *gorm.DB
	log         *zap.Logger
	clock       clock.Clock
	invoiceRepo invoicedomain.Repository
	alerter     *Alerter
}

func NewService(p Params) Service {
	return &service{
		db:          p.DB,
		log:         p.Log.Named("reminder.service"),
		clock:       p.Clock,
		invoiceRepo: p.InvoiceRepo,
		alerter:     p.Alerter,
	}
}

func (s *service) Overdue(ctx context.Context) (OverdueReport, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return OverdueReport{}, ErrInvalidUser
	}

	invoices, err := s.invoiceRepo.ListAll(ctx, s.db, userID)
	if err != nil {
		return OverdueReport{}, err
	}

	overdue := Evaluate(invoices, s.clock.Now())
	state := s.alerter.Observe(userID, overdue)

	return OverdueReport{Overdue: overdue, AlertState: state}, nil
}

func (s *service) MarkAlertFired(ctx context.Context) (AlertState, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return AlertIdle, ErrInvalidUser
	}
	return s.alerter.MarkFired(userID), nil
}

func (s *service) MuteAlert(ctx context.Context) (AlertState, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return AlertIdle, ErrInvalidUser
	}
	return s.alerter.Mute(userID), nil
}

func (s *service) ReplayAlert(ctx context.Context) (AlertState, error) {
	userID, ok := userctx.UserIDFromContext(ctx)
	if !ok || userID == 0 {
		return AlertIdle, ErrInvalidUser
	}
	return s.alerter.Replay(userID), nil
}
