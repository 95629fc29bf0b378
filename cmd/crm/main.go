package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/hotaeshwar/crm-sub000/internal/archive"
	"github.com/hotaeshwar/crm-sub000/internal/auth"
	"github.com/hotaeshwar/crm-sub000/internal/auth/session"
	"github.com/hotaeshwar/crm-sub000/internal/client"
	"github.com/hotaeshwar/crm-sub000/internal/clock"
	"github.com/hotaeshwar/crm-sub000/internal/config"
	"github.com/hotaeshwar/crm-sub000/internal/dashboard"
	"github.com/hotaeshwar/crm-sub000/internal/export"
	"github.com/hotaeshwar/crm-sub000/internal/invoice"
	"github.com/hotaeshwar/crm-sub000/internal/migration"
	"github.com/hotaeshwar/crm-sub000/internal/observability"
	"github.com/hotaeshwar/crm-sub000/internal/payment"
	"github.com/hotaeshwar/crm-sub000/internal/period"
	"github.com/hotaeshwar/crm-sub000/internal/reminder"
	"github.com/hotaeshwar/crm-sub000/internal/server"
	"github.com/hotaeshwar/crm-sub000/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		clock.Module,

		auth.Module,
		session.Module,
		client.Module,
		invoice.Module,
		payment.Module,
		dashboard.Module,
		reminder.Module,
		period.Module,
		export.Module,
		archive.Module,

		migration.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
