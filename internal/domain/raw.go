package domain

import "time"

// Raw write outcomes
const (
	RawInserted  = "inserted"
	RawUpdated   = "updated"
	RawUnchanged = "unchanged"
)

// RawResult reports the effect of a repair write
type RawResult struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	ID     int64  `json:"id,omitempty"`
}

// RawMatch writes a match row by explicit id
type RawMatch struct {
	ID         int64
	PlayedAt   time.Time
	Patch      string
	Duration   string
	RedWon     bool
	ExternalID string
}

// RawParticipant writes a participant row. ID is optional.
type RawParticipant struct {
	ID         *int64
	MatchID    int64
	ChampionID int
	IsRed      bool
}
