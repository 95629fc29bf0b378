package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/hotaeshwar/crm-sub000/internal/archive"
	authdomain "github.com/hotaeshwar/crm-sub000/internal/auth/domain"
	"github.com/hotaeshwar/crm-sub000/internal/auth/session"
	clientdomain "github.com/hotaeshwar/crm-sub000/internal/client/domain"
	"github.com/hotaeshwar/crm-sub000/internal/clock"
	"github.com/hotaeshwar/crm-sub000/internal/config"
	dashboarddomain "github.com/hotaeshwar/crm-sub000/internal/dashboard/domain"
	exportservice "github.com/hotaeshwar/crm-sub000/internal/export/service"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/hotaeshwar/crm-sub000/internal/observability"
	obslogger "github.com/hotaeshwar/crm-sub000/internal/observability/logger"
	obsmetrics "github.com/hotaeshwar/crm-sub000/internal/observability/metrics"
	obstracing "github.com/hotaeshwar/crm-sub000/internal/observability/tracing"
	paymentdomain "github.com/hotaeshwar/crm-sub000/internal/payment/domain"
	perioddomain "github.com/hotaeshwar/crm-sub000/internal/period/domain"
	"github.com/hotaeshwar/crm-sub000/internal/reminder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics, registry *prometheus.Registry) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(obstracing.GinMiddleware(obsCfg.ServiceName))
	r.Use(httpMetrics.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

func registerGin(obsCfg observability.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics, registry *prometheus.Registry) *gin.Engine {
	return NewEngine(obsCfg, log, httpMetrics, registry)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	db           *gorm.DB
	genID        *snowflake.Node
	clock        clock.Clock
	sessions     *session.Manager
	authSvc      authdomain.Service
	clientSvc    clientdomain.Service
	invoiceSvc   invoicedomain.Service
	paymentSvc   paymentdomain.Service
	dashboardSvc dashboarddomain.Service
	reminderSvc  reminder.Service
	periodSvc    perioddomain.Service
	exportSvc    exportservice.Service
	archiveSvc   archive.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	DB           *gorm.DB
	GenID        *snowflake.Node
	Clock        clock.Clock
	Sessions     *session.Manager
	AuthSvc      authdomain.Service
	ClientSvc    clientdomain.Service
	InvoiceSvc   invoicedomain.Service
	PaymentSvc   paymentdomain.Service
	DashboardSvc dashboarddomain.Service
	ReminderSvc  reminder.Service
	PeriodSvc    perioddomain.Service
	ExportSvc    exportservice.Service
	ArchiveSvc   archive.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		log:          p.Log.Named("http.server"),
		db:           p.DB,
		genID:        p.GenID,
		clock:        p.Clock,
		sessions:     p.Sessions,
		authSvc:      p.AuthSvc,
		clientSvc:    p.ClientSvc,
		invoiceSvc:   p.InvoiceSvc,
		paymentSvc:   p.PaymentSvc,
		dashboardSvc: p.DashboardSvc,
		reminderSvc:  p.ReminderSvc,
		periodSvc:    p.PeriodSvc,
		exportSvc:    p.ExportSvc,
		archiveSvc:   p.ArchiveSvc,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/signup", s.Signup)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
	auth.POST("/change-password", s.AuthRequired(), s.ChangePassword)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.AuthRequired())

	// -------- Clients --------
	api.GET("/clients", s.ListClients)
	api.POST("/clients", s.CreateClient)
	api.GET("/clients/:id", s.GetClientByID)
	api.PATCH("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.PATCH("/invoices/:id", s.UpdateInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.GET("/invoices/:id/pdf", s.ExportInvoicePDF)

	// -------- Payments --------
	api.GET("/payments", s.ListPayments)
	api.POST("/payments", s.RecordPayment)
	api.DELETE("/payments/:id", s.DeletePayment)

	// -------- Dashboard --------
	api.GET("/dashboard", s.DashboardSummary)

	// -------- Reminders --------
	api.GET("/reminders/overdue", s.ListOverdue)
	api.POST("/reminders/alert/fired", s.MarkAlertFired)
	api.POST("/reminders/alert/mute", s.MuteAlert)
	api.POST("/reminders/alert/replay", s.ReplayAlert)

	// -------- Calendar periods --------
	api.GET("/periods/years", s.ListYears)
	api.GET("/periods/:year", s.YearSummary)
	api.GET("/periods/:year/:month", s.MonthSummary)
	api.GET("/periods/day/:date", s.DayInvoices)

	// -------- Exports --------
	api.GET("/exports/invoices.xlsx", s.ExportInvoicesSpreadsheet)

	// -------- Archive --------
	api.POST("/archive", s.ArchivePeriod)
}
