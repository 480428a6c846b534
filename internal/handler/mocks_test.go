package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RiftStats_Go/internal/auth"
	"github.com/osse101/RiftStats_Go/internal/domain"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockAuthService mocks auth.Service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (domain.Profile, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthService) ParseToken(token string) (domain.Profile, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	args := m.Called(ctx, username, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) SetPassword(ctx context.Context, username, password string, isAdmin bool) (bool, error) {
	args := m.Called(ctx, username, password, isAdmin)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, username string) (domain.Profile, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockUserService) ListFavorites(ctx context.Context, username string) ([]domain.Champion, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Champion), args.Error(1)
}

func (m *MockUserService) AddFavorite(ctx context.Context, username string, championID int) (bool, error) {
	args := m.Called(ctx, username, championID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) RemoveFavorite(ctx context.Context, username string, championID int) error {
	args := m.Called(ctx, username, championID)
	return args.Error(0)
}

// MockChampionService mocks champion.Service
type MockChampionService struct {
	mock.Mock
}

func (m *MockChampionService) List(ctx context.Context) ([]domain.Champion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Champion), args.Error(1)
}

func (m *MockChampionService) Get(ctx context.Context, id int) (*domain.Champion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Champion), args.Error(1)
}

func (m *MockChampionService) Create(ctx context.Context, name string, id *int) (*domain.Champion, error) {
	args := m.Called(ctx, name, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Champion), args.Error(1)
}

func (m *MockChampionService) ResolveNames(ctx context.Context, names []string) (map[string]domain.Champion, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Champion), args.Error(1)
}

func (m *MockChampionService) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockChampionService) SyncChampions(ctx context.Context) (domain.ChampionSyncResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ChampionSyncResult), args.Error(1)
}

func (m *MockChampionService) SyncItems(ctx context.Context) (domain.ItemSyncResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ItemSyncResult), args.Error(1)
}

// MockReportService mocks report.Service
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) ChampionWinrate(ctx context.Context, championID int, patch string) (*domain.ChampionWinrate, error) {
	args := m.Called(ctx, championID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChampionWinrate), args.Error(1)
}

func (m *MockReportService) WinrateHistory(ctx context.Context, championID int) ([]domain.PatchWinrate, error) {
	args := m.Called(ctx, championID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PatchWinrate), args.Error(1)
}

func (m *MockReportService) TopItems(ctx context.Context, championID int, patch string, limit int) ([]domain.ItemPerformance, error) {
	args := m.Called(ctx, championID, patch, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemPerformance), args.Error(1)
}

func (m *MockReportService) ListPatches(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReportService) AllChampionWinrates(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionWinrateRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChampionWinrateRow), args.Error(1)
}

func (m *MockReportService) AllTopItems(ctx context.Context, filter domain.ReportFilter) ([]domain.ChampionItemRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChampionItemRow), args.Error(1)
}

func (m *MockReportService) PatchStats(ctx context.Context) ([]domain.PatchStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PatchStats), args.Error(1)
}

func (m *MockReportService) ExportWorkbook(ctx context.Context, filter domain.ReportFilter, w io.Writer) error {
	args := m.Called(ctx, filter, w)
	if body, ok := args.Get(1).(string); ok {
		_, _ = io.WriteString(w, body)
	}
	return args.Error(0)
}

func (m *MockReportService) WinrateHistoryChart(ctx context.Context, championID int, w io.Writer) error {
	args := m.Called(ctx, championID, w)
	if body, ok := args.Get(1).(string); ok {
		_, _ = io.WriteString(w, body)
	}
	return args.Error(0)
}

// MockIngestService mocks ingest.Service
type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) IngestTrusted(ctx context.Context, payload domain.MatchPayload) (domain.IngestResult, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.IngestResult), args.Error(1)
}

func (m *MockIngestService) IngestManual(ctx context.Context, req domain.ManualMatch) (domain.IngestResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.IngestResult), args.Error(1)
}

func (m *MockIngestService) ImportPlayerMatches(ctx context.Context, riotID, region string, count int) (domain.ImportStats, error) {
	args := m.Called(ctx, riotID, region, count)
	return args.Get(0).(domain.ImportStats), args.Error(1)
}

func (m *MockIngestService) GenerateMatches(ctx context.Context, count int) (domain.GenerateResult, error) {
	args := m.Called(ctx, count)
	return args.Get(0).(domain.GenerateResult), args.Error(1)
}

func (m *MockIngestService) GetMatch(ctx context.Context, matchID int64) (*domain.Match, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockIngestService) DeleteMatch(ctx context.Context, matchID int64) error {
	args := m.Called(ctx, matchID)
	return args.Error(0)
}

// MockRepairService mocks ingest.RepairService
type MockRepairService struct {
	mock.Mock
}

func (m *MockRepairService) UpsertItem(ctx context.Context, item domain.Item) (domain.RawResult, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.RawResult), args.Error(1)
}

func (m *MockRepairService) UpsertUser(ctx context.Context, username, password string, isAdmin bool) (domain.RawResult, error) {
	args := m.Called(ctx, username, password, isAdmin)
	return args.Get(0).(domain.RawResult), args.Error(1)
}

func (m *MockRepairService) UpsertMatch(ctx context.Context, match domain.RawMatch) (domain.RawResult, error) {
	args := m.Called(ctx, match)
	return args.Get(0).(domain.RawResult), args.Error(1)
}

func (m *MockRepairService) UpsertParticipant(ctx context.Context, p domain.RawParticipant) (domain.RawResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.RawResult), args.Error(1)
}

func (m *MockRepairService) AddParticipantItem(ctx context.Context, participantID int64, itemID int) (domain.RawResult, error) {
	args := m.Called(ctx, participantID, itemID)
	return args.Get(0).(domain.RawResult), args.Error(1)
}

func (m *MockRepairService) AddFavorite(ctx context.Context, username string, championID int) (domain.RawResult, error) {
	args := m.Called(ctx, username, championID)
	return args.Get(0).(domain.RawResult), args.Error(1)
}

// Request helpers

var (
	testAdmin = domain.Profile{Username: "admin", IsAdmin: true}
	testUser  = domain.Profile{Username: "alice"}
)

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withURLParams sets chi route params without a router
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withCaller(r *http.Request, p domain.Profile) *http.Request {
	return r.WithContext(auth.WithProfile(r.Context(), p))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
