package dashboard

import (
	"github.com/hotaeshwar/crm-sub000/internal/dashboard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dashboard.service",
	fx.Provide(service.NewService),
)
