package migration

import (
	authdomain "github.com/hotaeshwar/crm-sub000/internal/auth/domain"
	clientdomain "github.com/hotaeshwar/crm-sub000/internal/client/domain"
	"github.com/hotaeshwar/crm-sub000/internal/config"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	paymentdomain "github.com/hotaeshwar/crm-sub000/internal/payment/domain"
	"github.com/hotaeshwar/crm-sub000/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// Versioned migrations target postgres; other dialects
			// build the schema from the models.
			err := conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&clientdomain.Client{},
				&invoicedomain.Invoice{},
				&invoicedomain.InvoiceSequence{},
				&paymentdomain.Payment{},
			)
			if err != nil {
				return err
			}
		}

		return seed.EnsureAdminUser(conn, cfg)
	}),
)
