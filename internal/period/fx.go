package period

import (
	"github.com/hotaeshwar/crm-sub000/internal/period/service"
	"go.uber.org/fx"
)

var Module = fx.Module("period.service",
	fx.Provide(service.NewService),
)
