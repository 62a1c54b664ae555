package memcache_fx

import (
	"go.uber.org/fx"

	mem "wanderplan/pkg/memcache"
)

var Module = fx.Provide(provideStateStore)

func provideStateStore() mem.StateStore {
	return mem.NewOAuthStates()
}
