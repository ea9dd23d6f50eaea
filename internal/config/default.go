package config

import "time"

type ctxKey string

const (
	UidKey  ctxKey = "uid"
	RoleKey ctxKey = "role"
)

const (
	DefaultPage      = 1
	DefaultSize      = 40
	DefaultCacheTime = time.Hour
	MaxMemory        = 10 << 20 // 10 MB
)

const (
	AccessTokenDuration  = time.Minute * 15
	RefreshTokenDuration = time.Hour * 24

	// VerificationPinTTL is how long an issued device verification
	// pin stays valid. The pin proves physical presence at the
	// terminal, so the window is deliberately short.
	VerificationPinTTL = time.Second * 30
)
