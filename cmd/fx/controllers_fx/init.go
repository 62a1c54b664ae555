package controllers_fx

import (
	"go.uber.org/fx"

	"wanderplan/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPreferenceController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewLiveController),
	fx.Provide(controllers.NewHistoryController),
	fx.Provide(controllers.NewPlaceController),
	fx.Provide(controllers.NewMemoryController))
