package auth

import (
	"github.com/hotaeshwar/crm-sub000/internal/auth/repository"
	"github.com/hotaeshwar/crm-sub000/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
