package ingest

import (
	"fmt"
	"strings"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/utils"
)

// normalizeItems drops zero slots and duplicates, keeping first-seen order
func normalizeItems(ids []int) []int {
	out := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// validatePayload checks the match shape before any database work and normalizes item lists
func validatePayload(p *domain.MatchPayload) error {
	if len(p.Participants) != domain.ParticipantsPerMatch {
		return fmt.Errorf("%w: got %d participants", domain.ErrInvalidParticipants, len(p.Participants))
	}

	red := 0
	for i := range p.Participants {
		part := &p.Participants[i]
		if part.IsRed {
			red++
		}
		if part.ChampionID <= 0 && strings.TrimSpace(part.ChampionName) == "" {
			return fmt.Errorf("%w: participant %d has no champion", domain.ErrInvalidParticipants, i)
		}
		part.ItemIDs = normalizeItems(part.ItemIDs)
		if len(part.ItemIDs) > domain.MaxItemsPerParticipant {
			return fmt.Errorf("%w: participant %d has %d", domain.ErrTooManyItems, i, len(part.ItemIDs))
		}
	}
	if red != domain.ParticipantsPerSide {
		return fmt.Errorf("%w: got %d red participants", domain.ErrInvalidParticipants, red)
	}

	if strings.TrimSpace(p.Patch) == "" {
		return domain.ErrInvalidGameVersion
	}
	if _, ok := utils.ParseDuration(p.Duration); !ok {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDuration, p.Duration)
	}
	if p.PlayedAt.IsZero() {
		return fmt.Errorf("%w: played at is required", domain.ErrInvalidInput)
	}
	return nil
}
