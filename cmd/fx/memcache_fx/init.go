package memcache_fx

import (
	"go.uber.org/fx"

	mem "fitlog/pkg/memcache"
)

var Module = fx.Provide(
	provideResetTokens, provideSessions)

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideSessions() mem.SessionStore {
	return mem.NewSessions()
}
