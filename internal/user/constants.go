package user

// Log messages
const (
	LogMsgFavoriteAdded   = "Favorite added"
	LogMsgFavoriteRemoved = "Favorite removed"
)
