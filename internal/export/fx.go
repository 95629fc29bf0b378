package export

import (
	"github.com/hotaeshwar/crm-sub000/internal/export/pdf"
	"github.com/hotaeshwar/crm-sub000/internal/export/service"
	"go.uber.org/fx"
)

var Module = fx.Module("export.service",
	fx.Provide(pdf.New),
	fx.Provide(service.New),
)
