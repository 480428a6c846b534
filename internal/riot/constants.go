package riot

import "time"

// Routing zones
const (
	ZoneEurope   = "europe"
	ZoneAmericas = "americas"
	ZoneAsia     = "asia"
)

// Defaults
const (
	DefaultRegion          = "eun1"
	DefaultBaseURLTemplate = "https://%s.api.riotgames.com"
	DefaultRequestDelay    = 1200 * time.Millisecond
	DefaultTimeout         = 10 * time.Second
	MaxMatchCount          = 100
)

// Headers
const (
	HeaderRiotToken = "X-Riot-Token"
)

// Endpoint labels used for metrics
const (
	EndpointAccount   = "account"
	EndpointMatchIDs  = "match_ids"
	EndpointMatch     = "match"
	StatusLabelFailed = "transport_error"
)

// Paths
const (
	pathAccountByRiotID = "/riot/account/v1/accounts/by-riot-id/%s/%s"
	pathMatchIDsByPUUID = "/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d"
	pathMatchByID       = "/lol/match/v5/matches/%s"
)

// Error messages
const (
	ErrMsgRequestFailed  = "riot request failed"
	ErrMsgDecodeFailed   = "failed to decode riot response"
	ErrMsgRateLimitWait  = "rate limit wait aborted"
	ErrMsgStatusTemplate = "riot api returned status %d"
)
