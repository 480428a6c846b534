package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgUsernameTooShort   = "username too short"
	ErrMsgPasswordTooShort   = "password too short"
	ErrMsgUsernameTaken      = "username already exists"
	ErrMsgInvalidCredentials = "invalid credentials"

	// Session errors
	ErrMsgInvalidToken = "invalid or expired token"
	ErrMsgUnauthorized = "authentication required"
	ErrMsgForbidden    = "admin privileges required"

	// Reference data errors
	ErrMsgChampionNotFound           = "champion not found"
	ErrMsgChampionExists             = "champion already exists"
	ErrMsgChampionIDTaken            = "champion id already in use"
	ErrMsgItemNotFound               = "item not found"
	ErrMsgInsufficientReferenceData  = "at least 10 champions and 1 item are required"
	ErrMsgReferenceSourceUnavailable = "reference data source unavailable"

	// Match errors
	ErrMsgMatchNotFound         = "match not found"
	ErrMsgParticipantNotFound   = "participant not found"
	ErrMsgDuplicateMatch        = "match already imported"
	ErrMsgInvalidParticipants   = "match must have exactly 5 red and 5 blue participants"
	ErrMsgTooManyItems          = "participant can hold at most 7 items"
	ErrMsgInvalidDuration       = "duration must be in m:ss format"
	ErrMsgInvalidGameVersion    = "invalid game version"
	ErrMsgInvalidRiotID         = "riot id must be in Name#Tag format"
	ErrMsgFavoriteNotFound      = "favorite not found"
	ErrMsgUpstream              = "upstream match service error"
	ErrMsgUpstreamNotConfigured = "match source is not configured"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

var (
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrUsernameTooShort   = errors.New(ErrMsgUsernameTooShort)
	ErrPasswordTooShort   = errors.New(ErrMsgPasswordTooShort)
	ErrUsernameTaken      = errors.New(ErrMsgUsernameTaken)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	ErrInvalidToken = errors.New(ErrMsgInvalidToken)
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
	ErrForbidden    = errors.New(ErrMsgForbidden)

	ErrChampionNotFound           = errors.New(ErrMsgChampionNotFound)
	ErrChampionExists             = errors.New(ErrMsgChampionExists)
	ErrChampionIDTaken            = errors.New(ErrMsgChampionIDTaken)
	ErrItemNotFound               = errors.New(ErrMsgItemNotFound)
	ErrInsufficientReferenceData  = errors.New(ErrMsgInsufficientReferenceData)
	ErrReferenceSourceUnavailable = errors.New(ErrMsgReferenceSourceUnavailable)

	ErrMatchNotFound         = errors.New(ErrMsgMatchNotFound)
	ErrParticipantNotFound   = errors.New(ErrMsgParticipantNotFound)
	ErrDuplicateMatch        = errors.New(ErrMsgDuplicateMatch)
	ErrInvalidParticipants   = errors.New(ErrMsgInvalidParticipants)
	ErrTooManyItems          = errors.New(ErrMsgTooManyItems)
	ErrInvalidDuration       = errors.New(ErrMsgInvalidDuration)
	ErrInvalidGameVersion    = errors.New(ErrMsgInvalidGameVersion)
	ErrInvalidRiotID         = errors.New(ErrMsgInvalidRiotID)
	ErrFavoriteNotFound      = errors.New(ErrMsgFavoriteNotFound)
	ErrUpstream              = errors.New(ErrMsgUpstream)
	ErrUpstreamNotConfigured = errors.New(ErrMsgUpstreamNotConfigured)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)
