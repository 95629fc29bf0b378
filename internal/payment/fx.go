package payment

import (
	"github.com/hotaeshwar/crm-sub000/internal/payment/repository"
	"github.com/hotaeshwar/crm-sub000/internal/payment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
