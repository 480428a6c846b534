package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/riot"
	"github.com/osse101/RiftStats_Go/internal/utils"
)

// ImportPlayerMatches pulls a player's recent matches from the upstream source.
// Account or match list failures abort the batch; per-match failures are counted.
func (s *service) ImportPlayerMatches(ctx context.Context, riotID, region string, count int) (domain.ImportStats, error) {
	var stats domain.ImportStats
	if s.source == nil || !s.source.Configured() {
		return stats, domain.ErrUpstreamNotConfigured
	}

	name, tag, err := riot.SplitRiotID(riotID)
	if err != nil {
		return stats, err
	}
	region = strings.TrimSpace(region)
	if region == "" {
		region = riot.DefaultRegion
	}
	zone := riot.RoutingZone(region)
	count = utils.Clamp(count, DefaultImportCount, 1, MaxImportCount)

	log := logger.FromContext(ctx).With("riot_id", riotID, "region", region, "zone", zone)
	log.Info(LogMsgImportStarted, "count", count)

	unlock := s.locks.Lock("import:" + riotID)
	defer unlock()

	account, err := s.source.GetAccountByRiotID(ctx, zone, name, tag)
	if err != nil {
		return stats, fmt.Errorf("failed to resolve account: %w", err)
	}

	ids, err := s.source.GetMatchIDs(ctx, zone, account.PUUID, count)
	if err != nil {
		return stats, fmt.Errorf("failed to list matches: %w", err)
	}
	stats.Total = len(ids)

	for _, matchID := range ids {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		exists, err := s.repo.MatchExistsByExternalID(ctx, matchID)
		if err != nil {
			log.Warn(LogMsgImportIngestFailed, "match_id", matchID, "error", err)
			stats.Errors++
			continue
		}
		if exists {
			stats.Skipped++
			continue
		}

		detail, err := s.source.GetMatch(ctx, zone, matchID)
		if err != nil {
			log.Warn(LogMsgImportFetchFailed, "match_id", matchID, "error", err)
			stats.Errors++
			continue
		}

		payload, err := FromRiotMatch(detail)
		if err != nil {
			log.Warn(LogMsgImportIngestFailed, "match_id", matchID, "error", err)
			stats.Errors++
			continue
		}
		if payload.ExternalID == "" {
			payload.ExternalID = matchID
		}

		result, err := s.IngestTrusted(ctx, payload)
		switch {
		case err != nil && isSkippable(err):
			stats.Skipped++
		case err != nil:
			log.Warn(LogMsgImportIngestFailed, "match_id", matchID, "error", err)
			stats.Errors++
		case result.Skipped:
			stats.Skipped++
		default:
			stats.Imported++
		}
	}

	log.Info(LogMsgImportFinished,
		"imported", stats.Imported,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"total", stats.Total)
	return stats, nil
}
