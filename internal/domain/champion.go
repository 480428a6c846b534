package domain

// Champion is shared reference data. IDs below LocalChampionIDStart come from Riot.
type Champion struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Item is shared reference data keyed by the Riot item id
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ChampionSyncResult summarizes a champion catalogue sync
type ChampionSyncResult struct {
	Version  string `json:"version"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Total    int    `json:"total"`
}

// ItemSyncResult summarizes an item catalogue sync
type ItemSyncResult struct {
	Version  string `json:"version"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Removed  int    `json:"removed"`
	Total    int    `json:"total"`
}
