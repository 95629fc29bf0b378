package invoice

import (
	"github.com/hotaeshwar/crm-sub000/internal/invoice/number"
	"github.com/hotaeshwar/crm-sub000/internal/invoice/repository"
	"github.com/hotaeshwar/crm-sub000/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(number.NewGenerator),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
