package ingest

import (
	"fmt"
	"time"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/riot"
	"github.com/osse101/RiftStats_Go/internal/utils"
)

// FromRiotMatch converts a match-v5 document to an ingestion payload
func FromRiotMatch(m *riot.Match) (domain.MatchPayload, error) {
	if m == nil {
		return domain.MatchPayload{}, fmt.Errorf("%w: empty match", domain.ErrInvalidInput)
	}
	patch, ok := utils.PatchFromVersion(m.Info.GameVersion)
	if !ok {
		return domain.MatchPayload{}, fmt.Errorf("%w: %q", domain.ErrInvalidGameVersion, m.Info.GameVersion)
	}

	payload := domain.MatchPayload{
		ExternalID:   m.Metadata.MatchID,
		PlayedAt:     time.UnixMilli(m.Info.GameCreation).UTC(),
		Patch:        patch,
		Duration:     utils.FormatDuration(m.Info.GameDuration),
		RedWon:       redWon(m.Info),
		Participants: make([]domain.ParticipantPayload, 0, len(m.Info.Participants)),
	}

	for _, p := range m.Info.Participants {
		slots := p.Items()
		name := p.ChampionName
		if name == "" {
			name = fmt.Sprintf(fallbackChampionName, p.ChampionID)
		}
		payload.Participants = append(payload.Participants, domain.ParticipantPayload{
			ChampionID:   p.ChampionID,
			ChampionName: name,
			IsRed:        p.TeamID == domain.TeamIDRed,
			ItemIDs:      normalizeItems(slots[:]),
		})
	}
	return payload, nil
}

// redWon reads the red team's result, falling back to a red participant's flag
func redWon(info riot.MatchInfo) bool {
	for _, team := range info.Teams {
		if team.TeamID == domain.TeamIDRed {
			return team.Win
		}
	}
	for _, p := range info.Participants {
		if p.TeamID == domain.TeamIDRed {
			return p.Win
		}
	}
	return false
}
