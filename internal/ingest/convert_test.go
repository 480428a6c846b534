package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/riot"
)

func TestFromRiotMatch(t *testing.T) {
	payload, err := FromRiotMatch(riotMatch("EUN1_123", true))
	require.NoError(t, err)

	assert.Equal(t, "EUN1_123", payload.ExternalID)
	assert.Equal(t, "15.3", payload.Patch)
	assert.Equal(t, "31:05", payload.Duration)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), payload.PlayedAt)
	assert.True(t, payload.RedWon)

	require.Len(t, payload.Participants, domain.ParticipantsPerMatch)
	assert.False(t, payload.Participants[0].IsRed, "teamId 100 is blue")
	assert.True(t, payload.Participants[5].IsRed, "teamId 200 is red")
	assert.Equal(t, []int{1001, 3006, 3340}, payload.Participants[0].ItemIDs)
}

func TestFromRiotMatch_WinnerFromRedTeamNotFirstTeam(t *testing.T) {
	m := riotMatch("EUN1_5", false)
	// Red listed first and losing
	m.Info.Teams = []riot.Team{{TeamID: domain.TeamIDRed, Win: false}, {TeamID: domain.TeamIDBlue, Win: true}}

	payload, err := FromRiotMatch(m)
	require.NoError(t, err)
	assert.False(t, payload.RedWon)

	m.Info.Teams = []riot.Team{{TeamID: domain.TeamIDBlue, Win: false}, {TeamID: domain.TeamIDRed, Win: true}}
	payload, err = FromRiotMatch(m)
	require.NoError(t, err)
	assert.True(t, payload.RedWon)
}

func TestFromRiotMatch_WinnerFallsBackToParticipants(t *testing.T) {
	m := riotMatch("EUN1_6", true)
	m.Info.Teams = nil

	payload, err := FromRiotMatch(m)
	require.NoError(t, err)
	assert.True(t, payload.RedWon)
}

func TestFromRiotMatch_Errors(t *testing.T) {
	_, err := FromRiotMatch(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	m := riotMatch("EUN1_7", true)
	m.Info.GameVersion = "garbage"
	_, err = FromRiotMatch(m)
	assert.ErrorIs(t, err, domain.ErrInvalidGameVersion)
}

func TestFromRiotMatch_MissingChampionName(t *testing.T) {
	m := riotMatch("EUN1_8", true)
	m.Info.Participants[0].ChampionName = ""

	payload, err := FromRiotMatch(m)
	require.NoError(t, err)
	assert.Equal(t, "Champion 1", payload.Participants[0].ChampionName)
}
