package client

import (
	"github.com/hotaeshwar/crm-sub000/internal/client/repository"
	"github.com/hotaeshwar/crm-sub000/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
