package auth

import "time"

// Credential rules
const (
	MinUsernameLength = 3
	MinPasswordLength = 6
	DefaultBcryptCost = 10
)

// Token defaults
const (
	DefaultTokenTTL    = 24 * time.Hour
	DefaultIssuer      = "riftstats"
	MinSecretLength    = 32
	dummyPasswordInput = "riftstats-timing-equalizer"
)

// Log messages
const (
	LogMsgUserRegistered  = "User registered"
	LogMsgLoginSucceeded  = "Login succeeded"
	LogMsgLoginFailed     = "Login failed"
	LogMsgPasswordChanged = "Password changed"
	LogMsgPasswordSet     = "Password set"
)
