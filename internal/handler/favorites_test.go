package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

func TestFavorites_Mine(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		m := &MockUserService{}
		m.On("ListFavorites", mock.Anything, "alice").Return([]domain.Champion{{ID: 103, Name: "Ahri"}}, nil)

		rec := httptest.NewRecorder()
		NewFavoritesHandler(m).HandleListMine(rec,
			withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/users/me/favorites", nil), testUser))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":103,"name":"Ahri"}]`, rec.Body.String())
	})

	t.Run("add new then existing", func(t *testing.T) {
		m := &MockUserService{}
		m.On("AddFavorite", mock.Anything, "alice", 103).Return(true, nil).Once()
		m.On("AddFavorite", mock.Anything, "alice", 103).Return(false, nil).Once()
		h := NewFavoritesHandler(m)

		rec := httptest.NewRecorder()
		h.HandleAddMine(rec, withCaller(jsonRequest(t, http.MethodPost, "/api/v1/users/me/favorites", FavoriteRequest{ChampionID: 103}), testUser))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, decodeBody[FavoriteResponse](t, rec).Added)

		rec = httptest.NewRecorder()
		h.HandleAddMine(rec, withCaller(jsonRequest(t, http.MethodPost, "/api/v1/users/me/favorites", FavoriteRequest{ChampionID: 103}), testUser))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decodeBody[FavoriteResponse](t, rec).Added)
		m.AssertExpectations(t)
	})

	t.Run("remove missing", func(t *testing.T) {
		m := &MockUserService{}
		m.On("RemoveFavorite", mock.Anything, "alice", 103).Return(domain.ErrFavoriteNotFound)

		rec := httptest.NewRecorder()
		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/v1/users/me/favorites/103", nil), "championId", "103")
		NewFavoritesHandler(m).HandleRemoveMine(rec, withCaller(req, testUser))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad champion id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/v1/users/me/favorites/abc", nil), "championId", "abc")
		NewFavoritesHandler(&MockUserService{}).HandleRemoveMine(rec, withCaller(req, testUser))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFavorites_ForUser_Authorization(t *testing.T) {
	tests := []struct {
		name       string
		caller     domain.Profile
		target     string
		wantStatus int
	}{
		{"self", testUser, "alice", http.StatusOK},
		{"admin for anyone", testAdmin, "alice", http.StatusOK},
		{"other user", testUser, "bob", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockUserService{}
			m.On("ListFavorites", mock.Anything, tt.target).Return([]domain.Champion{}, nil).Maybe()

			rec := httptest.NewRecorder()
			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/champions/favorites/"+tt.target, nil), "username", tt.target)
			NewFavoritesHandler(m).HandleListForUser(rec, withCaller(req, tt.caller))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				m.AssertNotCalled(t, "ListFavorites", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestFavorites_AddForUser(t *testing.T) {
	t.Run("other user forbidden", func(t *testing.T) {
		m := &MockUserService{}
		rec := httptest.NewRecorder()
		req := jsonRequest(t, http.MethodPost, "/api/v1/champions/favorites", UserFavoriteRequest{Username: "bob", ChampionID: 7})
		NewFavoritesHandler(m).HandleAddForUser(rec, withCaller(req, testUser))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		m.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown champion", func(t *testing.T) {
		m := &MockUserService{}
		m.On("AddFavorite", mock.Anything, "bob", 7).Return(false, domain.ErrChampionNotFound)

		rec := httptest.NewRecorder()
		req := jsonRequest(t, http.MethodPost, "/api/v1/champions/favorites", UserFavoriteRequest{Username: "bob", ChampionID: 7})
		NewFavoritesHandler(m).HandleAddForUser(rec, withCaller(req, testAdmin))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("remove by admin", func(t *testing.T) {
		m := &MockUserService{}
		m.On("RemoveFavorite", mock.Anything, "bob", 7).Return(nil)

		rec := httptest.NewRecorder()
		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/v1/champions/favorites/bob/7", nil),
			"username", "bob", "championId", "7")
		NewFavoritesHandler(m).HandleRemoveForUser(rec, withCaller(req, testAdmin))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgFavoriteRemoved)
	})
}
