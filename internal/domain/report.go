package domain

// WinrateStats is a games/wins pair with its percentage
type WinrateStats struct {
	TotalGames int64   `json:"totalGames"`
	Wins       int64   `json:"wins"`
	Winrate    float64 `json:"winrate"`
}

// ChampionWinrate is the per-champion win rate split by side
type ChampionWinrate struct {
	Champion Champion     `json:"champion"`
	Patch    string       `json:"patch,omitempty"`
	Overall  WinrateStats `json:"overall"`
	RedSide  WinrateStats `json:"redSide"`
	BlueSide WinrateStats `json:"blueSide"`
}

// PatchWinrate is one point of a champion's win rate history
type PatchWinrate struct {
	Patch string `json:"patch"`
	WinrateStats
}

// ItemPerformance is one item's record on a champion
type ItemPerformance struct {
	ItemID   int     `json:"itemId"`
	ItemName string  `json:"itemName"`
	Games    int64   `json:"games"`
	Wins     int64   `json:"wins"`
	Winrate  float64 `json:"winrate"`
}

// ChampionWinrateRow is one line of the win rate report
type ChampionWinrateRow struct {
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	WinrateStats
}

// ChampionItemRow is one line of the top items report
type ChampionItemRow struct {
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	ItemPerformance
}

// PatchStats is one row of the per-patch aggregate view
type PatchStats struct {
	Patch              string  `json:"patch"`
	Matches            int64   `json:"matches"`
	RedWins            int64   `json:"redWins"`
	BlueWins           int64   `json:"blueWins"`
	RedWinrate         float64 `json:"redWinrate"`
	AvgDurationSeconds int64   `json:"avgDurationSeconds"`
}

// ReportFilter scopes admin reports
type ReportFilter struct {
	Side  Side
	Patch string
}

// SideCounts holds raw counts for one champion, used to build ChampionWinrate
type SideCounts struct {
	TotalGames int64
	Wins       int64
	RedGames   int64
	RedWins    int64
	BlueGames  int64
	BlueWins   int64
}
