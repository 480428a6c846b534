package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised by the participant item limit trigger
	PgErrorCodeCheckViolation = "23514"
)

// Constraint names referenced when translating errors
const (
	ConstraintChampionsPkey      = "champions_pkey"
	ConstraintChampionsNameLower = "champions_name_lower_idx"
)

// Raw repair table labels
const (
	TableItems            = "items"
	TableUsers            = "users"
	TableMatches          = "matches"
	TableParticipants     = "participants"
	TableParticipantItems = "participant_items"
	TableFavorites        = "favorites"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)
