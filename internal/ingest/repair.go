package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/repository"
	"github.com/osse101/RiftStats_Go/internal/utils"
)

// RepairService writes individual rows by explicit id for data repair
type RepairService interface {
	UpsertItem(ctx context.Context, item domain.Item) (domain.RawResult, error)
	UpsertUser(ctx context.Context, username, password string, isAdmin bool) (domain.RawResult, error)
	UpsertMatch(ctx context.Context, match domain.RawMatch) (domain.RawResult, error)
	UpsertParticipant(ctx context.Context, participant domain.RawParticipant) (domain.RawResult, error)
	AddParticipantItem(ctx context.Context, participantID int64, itemID int) (domain.RawResult, error)
	AddFavorite(ctx context.Context, username string, championID int) (domain.RawResult, error)
}

type repairService struct {
	repo   repository.Repair
	hasher PasswordHasher
}

// NewRepairService creates a new RepairService
func NewRepairService(repo repository.Repair, hasher PasswordHasher) RepairService {
	return &repairService{repo: repo, hasher: hasher}
}

// invalidReference turns a missing referenced row into a bad request
func invalidReference(err error) error {
	for _, target := range []error{
		domain.ErrMatchNotFound,
		domain.ErrParticipantNotFound,
		domain.ErrChampionNotFound,
		domain.ErrItemNotFound,
		domain.ErrUserNotFound,
		domain.ErrTooManyItems,
	} {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
	}
	return err
}

func (s *repairService) logResult(ctx context.Context, res domain.RawResult) {
	logger.FromContext(ctx).Info("Raw row written", "table", res.Table, "action", res.Action, "id", res.ID)
}

func (s *repairService) UpsertItem(ctx context.Context, item domain.Item) (domain.RawResult, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.ID <= 0 || item.Name == "" {
		return domain.RawResult{}, fmt.Errorf("%w: item id and name are required", domain.ErrInvalidInput)
	}
	res, err := s.repo.UpsertItem(ctx, item)
	if err != nil {
		return res, err
	}
	s.logResult(ctx, res)
	return res, nil
}

// UpsertUser hashes the plaintext password itself; stored hashes are never accepted
func (s *repairService) UpsertUser(ctx context.Context, username, password string, isAdmin bool) (domain.RawResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.RawResult{}, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return domain.RawResult{}, err
	}
	res, err := s.repo.UpsertUser(ctx, domain.User{Username: username, PasswordHash: hash, IsAdmin: isAdmin})
	if err != nil {
		return res, err
	}
	s.logResult(ctx, res)
	return res, nil
}

func (s *repairService) UpsertMatch(ctx context.Context, match domain.RawMatch) (domain.RawResult, error) {
	if match.ID <= 0 {
		return domain.RawResult{}, fmt.Errorf("%w: match id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(match.Patch) == "" {
		return domain.RawResult{}, domain.ErrInvalidGameVersion
	}
	if _, ok := utils.ParseDuration(match.Duration); !ok {
		return domain.RawResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, match.Duration)
	}
	if match.PlayedAt.IsZero() {
		match.PlayedAt = time.Now().UTC()
	}
	res, err := s.repo.UpsertMatch(ctx, match)
	if err != nil {
		return res, err
	}
	s.logResult(ctx, res)
	return res, nil
}

func (s *repairService) UpsertParticipant(ctx context.Context, p domain.RawParticipant) (domain.RawResult, error) {
	if p.MatchID <= 0 || p.ChampionID <= 0 {
		return domain.RawResult{}, fmt.Errorf("%w: match id and champion id are required", domain.ErrInvalidInput)
	}
	res, err := s.repo.UpsertParticipant(ctx, p)
	if err != nil {
		return res, invalidReference(err)
	}
	s.logResult(ctx, res)
	return res, nil
}

func (s *repairService) AddParticipantItem(ctx context.Context, participantID int64, itemID int) (domain.RawResult, error) {
	if participantID <= 0 || itemID <= 0 {
		return domain.RawResult{}, fmt.Errorf("%w: participant id and item id are required", domain.ErrInvalidInput)
	}
	res, err := s.repo.AddParticipantItem(ctx, participantID, itemID)
	if err != nil {
		return res, invalidReference(err)
	}
	s.logResult(ctx, res)
	return res, nil
}

func (s *repairService) AddFavorite(ctx context.Context, username string, championID int) (domain.RawResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || championID <= 0 {
		return domain.RawResult{}, fmt.Errorf("%w: username and champion id are required", domain.ErrInvalidInput)
	}
	res, err := s.repo.AddFavorite(ctx, username, championID)
	if err != nil {
		return res, invalidReference(err)
	}
	s.logResult(ctx, res)
	return res, nil
}
