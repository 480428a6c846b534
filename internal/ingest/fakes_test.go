package ingest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/repository"
	"github.com/osse101/RiftStats_Go/internal/riot"
)

// storedMatch is what a committed fake transaction wrote
type storedMatch struct {
	ID           int64
	Payload      domain.MatchPayload
	Participants []domain.ParticipantPayload
}

// fakeMatchRepo is an in-memory repository.Match
type fakeMatchRepo struct {
	mu          sync.Mutex
	external    map[string]bool
	champions   map[int]string
	items       map[int]bool
	matches     []storedMatch
	nextMatchID int64
	begun       int
	rollbacks   int

	// insertLosesRace makes InsertMatch report a concurrent winner
	insertLosesRace bool
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{
		external:  make(map[string]bool),
		champions: make(map[int]string),
		items:     make(map[int]bool),
	}
}

func (f *fakeMatchRepo) MatchExistsByExternalID(_ context.Context, externalID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.external[externalID], nil
}

func (f *fakeMatchRepo) GetMatch(_ context.Context, matchID int64) (*domain.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.matches {
		if m.ID == matchID {
			return &domain.Match{ID: m.ID, Patch: m.Payload.Patch}, nil
		}
	}
	return nil, domain.ErrMatchNotFound
}

func (f *fakeMatchRepo) DeleteMatch(_ context.Context, matchID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.matches {
		if m.ID == matchID {
			f.matches = append(f.matches[:i], f.matches[i+1:]...)
			return nil
		}
	}
	return domain.ErrMatchNotFound
}

func (f *fakeMatchRepo) ListChampionIDs(_ context.Context) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int, 0, len(f.champions))
	for id := range f.champions {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeMatchRepo) ListItemIDs(_ context.Context) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeMatchRepo) BeginIngestTx(_ context.Context) (repository.IngestTx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.begun++
	return &fakeIngestTx{repo: f, newItems: make(map[int]bool), newChampions: make(map[int]string)}, nil
}

func (f *fakeMatchRepo) committed() []storedMatch {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]storedMatch, len(f.matches))
	copy(out, f.matches)
	return out
}

type fakeIngestTx struct {
	repo         *fakeMatchRepo
	pending      *storedMatch
	newItems     map[int]bool
	newChampions map[int]string
	done         bool
}

func (t *fakeIngestTx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for id := range t.newItems {
		t.repo.items[id] = true
	}
	for id, name := range t.newChampions {
		t.repo.champions[id] = name
	}
	if t.pending != nil {
		if t.pending.Payload.ExternalID != "" {
			t.repo.external[t.pending.Payload.ExternalID] = true
		}
		t.repo.matches = append(t.repo.matches, *t.pending)
	}
	return nil
}

func (t *fakeIngestTx) Rollback(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.repo.mu.Lock()
	t.repo.rollbacks++
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeIngestTx) InsertMatch(_ context.Context, payload domain.MatchPayload) (int64, bool, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if t.repo.insertLosesRace {
		return 0, false, nil
	}
	t.repo.nextMatchID++
	t.pending = &storedMatch{ID: t.repo.nextMatchID, Payload: payload}
	return t.repo.nextMatchID, true, nil
}

func (t *fakeIngestTx) ResolveChampion(_ context.Context, id int, name string) (int, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if _, ok := t.repo.champions[id]; ok {
		return id, nil
	}
	for existing, n := range t.repo.champions {
		if strings.EqualFold(n, name) {
			return existing, nil
		}
	}
	t.newChampions[id] = name
	return id, nil
}

func (t *fakeIngestTx) ItemExists(_ context.Context, itemID int) (bool, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	return t.repo.items[itemID] || t.newItems[itemID], nil
}

func (t *fakeIngestTx) EnsureItem(_ context.Context, itemID int) error {
	t.newItems[itemID] = true
	return nil
}

func (t *fakeIngestTx) InsertParticipant(_ context.Context, _ int64, championID int, isRed bool) (int64, error) {
	t.pending.Participants = append(t.pending.Participants, domain.ParticipantPayload{ChampionID: championID, IsRed: isRed})
	return int64(len(t.pending.Participants)), nil
}

func (t *fakeIngestTx) AddParticipantItem(_ context.Context, participantID int64, itemID int) error {
	p := &t.pending.Participants[participantID-1]
	if len(p.ItemIDs) >= domain.MaxItemsPerParticipant {
		return domain.ErrTooManyItems
	}
	p.ItemIDs = append(p.ItemIDs, itemID)
	return nil
}

// fakeResolver resolves names from a fixed table
type fakeResolver struct {
	champions []domain.Champion
	calls     int
}

func (r *fakeResolver) ResolveNames(_ context.Context, names []string) (map[string]domain.Champion, error) {
	r.calls++
	out := make(map[string]domain.Champion)
	for _, n := range names {
		for _, c := range r.champions {
			if strings.EqualFold(c.Name, strings.TrimSpace(n)) {
				out[strings.ToLower(c.Name)] = c
			}
		}
	}
	return out, nil
}

// fakeSource is a scripted MatchSource
type fakeSource struct {
	mu         sync.Mutex
	configured bool
	accountErr error
	listErr    error
	ids        []string
	matches    map[string]*riot.Match
	failIDs    map[string]error
	fetched    []string
	zones      []string
}

func (s *fakeSource) Configured() bool { return s.configured }

func (s *fakeSource) GetAccountByRiotID(_ context.Context, zone, name, tag string) (*riot.Account, error) {
	s.mu.Lock()
	s.zones = append(s.zones, zone)
	s.mu.Unlock()
	if s.accountErr != nil {
		return nil, s.accountErr
	}
	return &riot.Account{PUUID: "puuid-" + name + "-" + tag}, nil
}

func (s *fakeSource) GetMatchIDs(_ context.Context, _, _ string, count int) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if count < len(s.ids) {
		return s.ids[:count], nil
	}
	return s.ids, nil
}

func (s *fakeSource) GetMatch(_ context.Context, _, matchID string) (*riot.Match, error) {
	s.mu.Lock()
	s.fetched = append(s.fetched, matchID)
	s.mu.Unlock()
	if err := s.failIDs[matchID]; err != nil {
		return nil, err
	}
	m, ok := s.matches[matchID]
	if !ok {
		return nil, errors.New("no such match")
	}
	return m, nil
}

// riotMatch builds a well-formed match-v5 document
func riotMatch(id string, redWins bool) *riot.Match {
	m := &riot.Match{
		Metadata: riot.Metadata{MatchID: id},
		Info: riot.MatchInfo{
			GameCreation: 1700000000000,
			GameDuration: 1865,
			GameVersion:  "15.3.512.1234",
			Teams: []riot.Team{
				{TeamID: domain.TeamIDBlue, Win: !redWins},
				{TeamID: domain.TeamIDRed, Win: redWins},
			},
		},
	}
	for i := 0; i < domain.ParticipantsPerMatch; i++ {
		team := domain.TeamIDBlue
		if i >= domain.ParticipantsPerSide {
			team = domain.TeamIDRed
		}
		m.Info.Participants = append(m.Info.Participants, riot.Participant{
			ChampionID:   i + 1,
			ChampionName: "Champ" + string(rune('A'+i)),
			TeamID:       team,
			Win:          (team == domain.TeamIDRed) == redWins,
			Item0:        1001,
			Item1:        3006,
			Item6:        3340,
		})
	}
	return m
}
