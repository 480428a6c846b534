package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidPathParam      = "Invalid %s"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidDate           = "Invalid date, expected RFC3339 or YYYY-MM-DD"
	ErrMsgAuthRequired          = "Authentication required"
	ErrMsgNotAllowed            = "You may only manage your own favorites"
)

// Success messages for API responses
const (
	MsgPasswordChanged = "Password changed"
	MsgFavoriteAdded   = "Favorite added"
	MsgFavoriteExists  = "Favorite already present"
	MsgFavoriteRemoved = "Favorite removed"
	MsgMatchSkipped    = "Match already imported"
	MsgChampionsSynced = "Champion catalogue synced"
	MsgItemsSynced     = "Item catalogue synced"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequestError   = "Invalid request. Please check your inputs."
	ErrMsgInvalidCredentialsErr = "Invalid username or password"
	ErrMsgInvalidTokenError     = "Session is invalid or expired. Please log in again."
	ErrMsgForbiddenError        = "Admin privileges required"
	ErrMsgUpstreamError         = "Upstream match service error"
	ErrMsgUpstreamUnavailable   = "Match import is not configured"
	ErrMsgCatalogUnavailable    = "Reference data source unavailable"

	ErrMsgUsernameTooShortError = "Username must be at least 3 characters"
	ErrMsgPasswordTooShortError = "Password must be at least 6 characters"
	ErrMsgUsernameTakenError    = "Username already taken"
	ErrMsgUserNotFoundError     = "User not found"

	ErrMsgChampionNotFoundError = "Champion not found"
	ErrMsgChampionExistsError   = "Champion already exists"
	ErrMsgChampionIDTakenError  = "Champion id already in use"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgFavoriteNotFoundError = "Favorite not found"

	ErrMsgMatchNotFoundError       = "Match not found"
	ErrMsgParticipantNotFoundError = "Participant not found"
	ErrMsgInvalidParticipantsError = "A match needs exactly 5 red and 5 blue champions"
	ErrMsgTooManyItemsError        = "A participant can hold at most 7 items"
	ErrMsgInvalidDurationError     = "Duration must look like 31:05"
	ErrMsgInvalidVersionError      = "Version must look like 15.3 or 15.3.1"
	ErrMsgInvalidRiotIDError       = "Riot id must look like Name#Tag"
	ErrMsgInsufficientDataError    = "Not enough champions or items stored to generate matches"
)
