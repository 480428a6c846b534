package domain

// Match shape
const (
	ParticipantsPerSide    = 5
	ParticipantsPerMatch   = 2 * ParticipantsPerSide
	MaxItemsPerParticipant = 7
)

// Riot team identifiers
const (
	TeamIDBlue = 100
	TeamIDRed  = 200
)

// LocalChampionIDStart is where locally assigned champion ids begin
const LocalChampionIDStart = 100000

// Side selects one team in reports
type Side string

const (
	SideAny  Side = ""
	SideRed  Side = "red"
	SideBlue Side = "blue"
)

// Valid reports whether s is a known side filter
func (s Side) Valid() bool {
	return s == SideAny || s == SideRed || s == SideBlue
}

// IsRed returns a pointer usable as an optional query filter
func (s Side) IsRed() *bool {
	switch s {
	case SideRed:
		v := true
		return &v
	case SideBlue:
		v := false
		return &v
	default:
		return nil
	}
}

// Ingestion sources, used as metric labels
const (
	SourceRiot      = "riot"
	SourceManual    = "manual"
	SourceGenerated = "generated"
)
