package plan_fx

import (
	"go.uber.org/fx"

	"wanderplan/internal/services"
)

var Module = fx.Provide(
	services.NewPlanService,
	services.NewLiveService,
)
