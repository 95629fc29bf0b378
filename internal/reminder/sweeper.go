package reminder

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/hotaeshwar/crm-sub000/internal/clock"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultSweepInterval = time.Hour

// Sweeper periodically folds every user's overdue set into the alert
// latch so alerts arm even while nobody is browsing.
type Sweeper struct {
	db          *gorm.DB
	log         *zap.Logger
	clock       clock.Clock
	invoiceRepo invoicedomain.Repository
	alerter     *Alerter
	interval    time.Duration
}

type SweeperParams struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Clock       clock.Clock
	InvoiceRepo invoicedomain.Repository
	Alerter     *Alerter
}

func NewSweeper(p SweeperParams) *Sweeper {
	return &Sweeper{
		db:          p.DB,
		log:         p.Log.Named("reminder.sweeper"),
		clock:       p.Clock,
		invoiceRepo: p.InvoiceRepo,
		alerter:     p.Alerter,
		interval:    DefaultSweepInterval,
	}
}

func (s *Sweeper) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.log.Warn("overdue sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep evaluates the overdue set of every user with invoices.
func (s *Sweeper) Sweep(ctx context.Context) error {
	var userIDs []snowflake.ID
	err := s.db.WithContext(ctx).
		Model(&invoicedomain.Invoice{}).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return err
	}

	now := s.clock.Now()
	for _, userID := range userIDs {
		invoices, err := s.invoiceRepo.ListAll(ctx, s.db, userID)
		if err != nil {
			return err
		}

		overdue := Evaluate(invoices, now)
		state := s.alerter.Observe(userID, overdue)
		if state == AlertPending {
			s.log.Info("overdue alert pending",
				zap.String("user_id", userID.String()),
				zap.Int("overdue_invoices", len(overdue)),
			)
		}
	}
	return nil
}

func runSweeper(lc fx.Lifecycle, sweeper *Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runCtx, cancel := context.WithCancel(context.Background())

			go sweeper.RunForever(runCtx)

			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					cancel()
					return nil
				},
			})

			return nil
		},
	})
}
