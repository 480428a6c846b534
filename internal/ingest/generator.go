package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/utils"
)

// generatedPatches lists the patches synthetic matches are spread over
var generatedPatches = func() []string {
	patches := make([]string, 0, 25)
	for minor := 1; minor <= 24; minor++ {
		patches = append(patches, fmt.Sprintf("15.%d", minor))
	}
	return append(patches, "16.1")
}()

// generator builds random but well-formed matches. Faker is not safe for concurrent use.
type generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

func newGenerator(seed uint64) *generator {
	return &generator{faker: gofakeit.New(seed)}
}

// match draws one payload from the given reference ids
func (g *generator) match(championIDs, itemIDs []int) domain.MatchPayload {
	g.mu.Lock()
	defer g.mu.Unlock()
	f := g.faker

	champs := pickDistinct(f, championIDs, domain.ParticipantsPerMatch)
	seconds := int64(f.IntRange(GeneratedMinutesMin, GeneratedMinutesMax))*60 + int64(f.IntRange(0, 59))

	payload := domain.MatchPayload{
		ExternalID:   GeneratedExternalIDPrefix + f.UUID(),
		PlayedAt:     f.DateRange(GeneratedPeriodStart, GeneratedPeriodEnd).UTC(),
		Patch:        generatedPatches[f.IntRange(0, len(generatedPatches)-1)],
		Duration:     utils.FormatDuration(seconds),
		RedWon:       f.Bool(),
		Participants: make([]domain.ParticipantPayload, len(champs)),
	}
	for i, champ := range champs {
		n := f.IntRange(GeneratedItemsMin, GeneratedItemsMax)
		payload.Participants[i] = domain.ParticipantPayload{
			ChampionID: champ,
			IsRed:      i < domain.ParticipantsPerSide,
			ItemIDs:    pickDistinct(f, itemIDs, n),
		}
	}
	return payload
}

// pickDistinct returns up to n distinct values from ids
func pickDistinct(f *gofakeit.Faker, ids []int, n int) []int {
	shuffled := make([]int, len(ids))
	copy(shuffled, ids)
	f.ShuffleInts(shuffled)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// GenerateMatches stores count synthetic matches drawn from stored champions and items.
// Each match is its own transaction; failures are counted and the loop continues.
func (s *service) GenerateMatches(ctx context.Context, count int) (domain.GenerateResult, error) {
	count = utils.Clamp(count, DefaultGenerateCount, 1, MaxGenerateCount)
	result := domain.GenerateResult{Requested: count}

	championIDs, err := s.repo.ListChampionIDs(ctx)
	if err != nil {
		return result, err
	}
	itemIDs, err := s.repo.ListItemIDs(ctx)
	if err != nil {
		return result, err
	}
	if len(championIDs) < MinChampionsForGeneration || len(itemIDs) < MinItemsForGeneration {
		return result, fmt.Errorf("%w: have %d champions and %d items",
			domain.ErrInsufficientReferenceData, len(championIDs), len(itemIDs))
	}

	log := logger.FromContext(ctx)
	start := time.Now()
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		payload := s.gen.match(championIDs, itemIDs)
		res, err := s.ingest(ctx, domain.SourceGenerated, payload, policyExisting)
		if err != nil {
			log.Warn(LogMsgGenerateFailed, "index", i, "error", err)
			result.Errors++
			continue
		}
		if res.Imported {
			result.Generated++
		}
	}

	log.Info(LogMsgGenerateFinished,
		"generated", result.Generated,
		"errors", result.Errors,
		"duration", time.Since(start))
	return result, nil
}
