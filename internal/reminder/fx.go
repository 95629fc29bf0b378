package reminder

import "go.uber.org/fx"

var Module = fx.Module("reminder.service",
	fx.Provide(NewAlerter),
	fx.Provide(NewService),
	fx.Provide(NewSweeper),
	fx.Invoke(runSweeper),
)
