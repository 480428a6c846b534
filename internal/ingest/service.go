package ingest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/osse101/RiftStats_Go/internal/concurrency"
	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/metrics"
	"github.com/osse101/RiftStats_Go/internal/repository"
	"github.com/osse101/RiftStats_Go/internal/utils"
)

// referencePolicy decides how participants' champions and items reach the store
type referencePolicy int

const (
	// policyUpsert creates missing champions and items from the payload
	policyUpsert referencePolicy = iota
	// policyExisting requires every champion id and item id to be stored already
	policyExisting
)

type service struct {
	repo      repository.Match
	source    MatchSource
	champions ChampionResolver
	locks     *concurrency.LockManager
	gen       *generator
	now       func() time.Time
}

// Option configures the ingestion service
type Option func(*service)

// WithGeneratorSeed makes synthetic matches reproducible
func WithGeneratorSeed(seed uint64) Option {
	return func(s *service) { s.gen = newGenerator(seed) }
}

// WithClock overrides the clock used for manual match defaults
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a new ingestion service
func NewService(repo repository.Match, source MatchSource, champions ChampionResolver, locks *concurrency.LockManager, opts ...Option) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	s := &service{
		repo:      repo,
		source:    source,
		champions: champions,
		locks:     locks,
		gen:       newGenerator(uint64(time.Now().UnixNano())),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IngestTrusted stores a match from a trusted source, creating unknown champions and items
func (s *service) IngestTrusted(ctx context.Context, payload domain.MatchPayload) (domain.IngestResult, error) {
	return s.ingest(ctx, domain.SourceRiot, payload, policyUpsert)
}

// IngestManual validates an admin-entered match against stored reference data and stores it
func (s *service) IngestManual(ctx context.Context, req domain.ManualMatch) (domain.IngestResult, error) {
	payload, err := s.manualPayload(ctx, req)
	if err != nil {
		return domain.IngestResult{}, err
	}
	return s.ingest(ctx, domain.SourceManual, payload, policyExisting)
}

// GetMatch returns a stored match with its participants
func (s *service) GetMatch(ctx context.Context, matchID int64) (*domain.Match, error) {
	return s.repo.GetMatch(ctx, matchID)
}

// DeleteMatch removes a match and everything it owns
func (s *service) DeleteMatch(ctx context.Context, matchID int64) error {
	if err := s.repo.DeleteMatch(ctx, matchID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Match deleted", "match_id", matchID)
	return nil
}

func (s *service) manualPayload(ctx context.Context, req domain.ManualMatch) (domain.MatchPayload, error) {
	if len(req.RedChampions) != domain.ParticipantsPerSide || len(req.BlueChampions) != domain.ParticipantsPerSide {
		return domain.MatchPayload{}, fmt.Errorf("%w: got %d red and %d blue",
			domain.ErrInvalidParticipants, len(req.RedChampions), len(req.BlueChampions))
	}
	if len(req.RedItems) > domain.ParticipantsPerSide || len(req.BlueItems) > domain.ParticipantsPerSide {
		return domain.MatchPayload{}, fmt.Errorf("%w: more item lists than participants", domain.ErrInvalidInput)
	}

	patch, ok := utils.PatchFromVersion(req.Version)
	if !ok {
		return domain.MatchPayload{}, fmt.Errorf("%w: %q", domain.ErrInvalidGameVersion, req.Version)
	}
	if _, ok := utils.ParseDuration(req.Duration); !ok {
		return domain.MatchPayload{}, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, req.Duration)
	}

	names := make([]string, 0, domain.ParticipantsPerMatch)
	names = append(names, req.RedChampions...)
	names = append(names, req.BlueChampions...)
	resolved, err := s.champions.ResolveNames(ctx, names)
	if err != nil {
		return domain.MatchPayload{}, fmt.Errorf("failed to resolve champions: %w", err)
	}
	var missing []string
	for _, n := range names {
		if _, ok := resolved[strings.ToLower(strings.TrimSpace(n))]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return domain.MatchPayload{}, fmt.Errorf("%w: %s", domain.ErrChampionNotFound, strings.Join(missing, ", "))
	}

	playedAt := s.now().UTC()
	if req.Date != nil && !req.Date.IsZero() {
		playedAt = req.Date.UTC()
	}

	payload := domain.MatchPayload{
		ExternalID:   strings.TrimSpace(req.ExternalID),
		PlayedAt:     playedAt,
		Patch:        patch,
		Duration:     strings.TrimSpace(req.Duration),
		RedWon:       req.RedWins,
		Participants: make([]domain.ParticipantPayload, 0, domain.ParticipantsPerMatch),
	}
	side := func(champs []string, items [][]int, isRed bool) {
		for i, name := range champs {
			champ := resolved[strings.ToLower(strings.TrimSpace(name))]
			var itemIDs []int
			if i < len(items) {
				itemIDs = items[i]
			}
			payload.Participants = append(payload.Participants, domain.ParticipantPayload{
				ChampionID:   champ.ID,
				ChampionName: champ.Name,
				IsRed:        isRed,
				ItemIDs:      itemIDs,
			})
		}
	}
	side(req.RedChampions, req.RedItems, true)
	side(req.BlueChampions, req.BlueItems, false)
	return payload, nil
}

// ingest writes one match in a single transaction
func (s *service) ingest(ctx context.Context, source string, payload domain.MatchPayload, policy referencePolicy) (domain.IngestResult, error) {
	log := logger.FromContext(ctx)

	// A known external id is skipped even when its payload would not validate
	if payload.ExternalID != "" {
		exists, err := s.repo.MatchExistsByExternalID(ctx, payload.ExternalID)
		if err != nil {
			metrics.MatchesIngested.WithLabelValues(source, metrics.ResultError).Inc()
			return domain.IngestResult{}, err
		}
		if exists {
			metrics.MatchesIngested.WithLabelValues(source, metrics.ResultSkipped).Inc()
			log.Debug(LogMsgMatchSkipped, "external_id", payload.ExternalID)
			return domain.IngestResult{Skipped: true}, nil
		}
	}

	if err := validatePayload(&payload); err != nil {
		metrics.MatchesIngested.WithLabelValues(source, metrics.ResultError).Inc()
		return domain.IngestResult{}, err
	}

	matchID, inserted, err := s.writeMatch(ctx, payload, policy)
	if err != nil {
		metrics.MatchesIngested.WithLabelValues(source, metrics.ResultError).Inc()
		return domain.IngestResult{}, err
	}
	if !inserted {
		metrics.MatchesIngested.WithLabelValues(source, metrics.ResultSkipped).Inc()
		log.Debug(LogMsgMatchSkipped, "external_id", payload.ExternalID)
		return domain.IngestResult{Skipped: true}, nil
	}

	metrics.MatchesIngested.WithLabelValues(source, metrics.ResultImported).Inc()
	log.Info(LogMsgMatchIngested, "match_id", matchID, "source", source, "external_id", payload.ExternalID)
	return domain.IngestResult{Imported: true, MatchID: matchID}, nil
}

func (s *service) writeMatch(ctx context.Context, payload domain.MatchPayload, policy referencePolicy) (int64, bool, error) {
	tx, err := s.repo.BeginIngestTx(ctx)
	if err != nil {
		return 0, false, err
	}
	defer repository.SafeRollback(ctx, tx)

	matchID, inserted, err := tx.InsertMatch(ctx, payload)
	if err != nil {
		return 0, false, err
	}
	if !inserted {
		// A concurrent ingest stored this external id first
		return 0, false, nil
	}

	for _, p := range payload.Participants {
		championID := p.ChampionID
		if policy == policyUpsert {
			championID, err = tx.ResolveChampion(ctx, p.ChampionID, p.ChampionName)
			if err != nil {
				return 0, false, err
			}
		}

		participantID, err := tx.InsertParticipant(ctx, matchID, championID, p.IsRed)
		if err != nil {
			return 0, false, err
		}

		for _, itemID := range p.ItemIDs {
			if err := s.prepareItem(ctx, tx, itemID, policy); err != nil {
				return 0, false, err
			}
			if err := tx.AddParticipantItem(ctx, participantID, itemID); err != nil {
				return 0, false, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, false, err
	}
	return matchID, true, nil
}

func (s *service) prepareItem(ctx context.Context, tx repository.IngestTx, itemID int, policy referencePolicy) error {
	if policy == policyUpsert {
		return tx.EnsureItem(ctx, itemID)
	}
	exists, err := tx.ItemExists(ctx, itemID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	return nil
}

// isSkippable reports errors that mean the match is already stored
func isSkippable(err error) bool {
	return errors.Is(err, domain.ErrDuplicateMatch)
}
