package domain

import "time"

// Match is a stored game with its participants
type Match struct {
	ID           int64         `json:"id"`
	PlayedAt     time.Time     `json:"playedAt"`
	Patch        string        `json:"patch"`
	Duration     string        `json:"duration"`
	RedWon       bool          `json:"redWon"`
	ExternalID   *string       `json:"externalId,omitempty"`
	Participants []Participant `json:"participants,omitempty"`
}

// Participant is one champion slot in a match
type Participant struct {
	ID           int64  `json:"id"`
	MatchID      int64  `json:"matchId"`
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName,omitempty"`
	IsRed        bool   `json:"isRed"`
	ItemIDs      []int  `json:"itemIds"`
}

// MatchPayload is the normalized input of one ingestion
type MatchPayload struct {
	ExternalID   string
	PlayedAt     time.Time
	Patch        string
	Duration     string
	RedWon       bool
	Participants []ParticipantPayload
}

// ParticipantPayload identifies a champion by id, name or both
type ParticipantPayload struct {
	ChampionID   int
	ChampionName string
	IsRed        bool
	ItemIDs      []int
}

// ManualMatch is an admin-entered match. Champions are typed names.
type ManualMatch struct {
	Date          *time.Time
	Version       string
	Duration      string
	RedChampions  []string
	BlueChampions []string
	RedItems      [][]int
	BlueItems     [][]int
	RedWins       bool
	ExternalID    string
}

// IngestResult reports what one ingestion did
type IngestResult struct {
	Imported bool  `json:"imported"`
	Skipped  bool  `json:"skipped"`
	MatchID  int64 `json:"matchId,omitempty"`
}

// ImportStats summarizes a batch import
type ImportStats struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
	Total    int `json:"total"`
}

// GenerateResult summarizes synthetic match generation
type GenerateResult struct {
	Requested int `json:"requested"`
	Generated int `json:"count"`
	Errors    int `json:"errors"`
}
