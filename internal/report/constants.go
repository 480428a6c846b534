package report

// Ranking limits
const (
	DefaultTopItemsLimit = 10
	MaxTopItemsLimit     = 100
)

// Workbook sheet names
const (
	SheetWinrate  = "Winrate"
	SheetTopItems = "TopItems"
	SheetPatches  = "Patches"
	defaultSheet  = "Sheet1"
)

// Chart layout
const (
	ChartWidth  = 800
	ChartHeight = 400
	chartNoData = "No games recorded"

	singlePatchHalfWidth = 0.25
)
