package riot

// Account is the subset of account-v1 used here
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Match is a match-v5 detail document
type Match struct {
	Metadata Metadata  `json:"metadata"`
	Info     MatchInfo `json:"info"`
}

// Metadata identifies the match upstream
type Metadata struct {
	MatchID string `json:"matchId"`
}

// MatchInfo carries the game facts
type MatchInfo struct {
	GameCreation int64         `json:"gameCreation"`
	GameDuration int64         `json:"gameDuration"`
	GameVersion  string        `json:"gameVersion"`
	Participants []Participant `json:"participants"`
	Teams        []Team        `json:"teams"`
}

// Participant is one player slot
type Participant struct {
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	TeamID       int    `json:"teamId"`
	Win          bool   `json:"win"`
	Item0        int    `json:"item0"`
	Item1        int    `json:"item1"`
	Item2        int    `json:"item2"`
	Item3        int    `json:"item3"`
	Item4        int    `json:"item4"`
	Item5        int    `json:"item5"`
	Item6        int    `json:"item6"`
}

// Items returns the seven item slots in order
func (p Participant) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// Team is a side's result
type Team struct {
	TeamID int  `json:"teamId"`
	Win    bool `json:"win"`
}
