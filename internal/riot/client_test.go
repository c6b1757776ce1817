package riot

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubClient routes every request, regardless of the Riot host in the URL,
// to a local TLS server so the hardcoded URL templates stay untouched.
func newStubClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	addr := srv.Listener.Addr().String()
	client := NewClient()
	client.client.Dial = func(string) (net.Conn, error) {
		return net.Dial("tcp", addr)
	}
	client.client.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	return client
}

func TestGetAccountByRiotID(t *testing.T) {
	var gotURI, gotHost string
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		gotHost = r.Host
		fmt.Fprint(w, `{"puuid":"abc-123","gameName":"Hide on bush","tagLine":"KR1"}`)
	})

	account, err := client.GetAccountByRiotID(context.Background(), "Hide on bush", "KR1", "RGAPI-test")
	require.NoError(t, err)

	assert.Equal(t, "asia.api.riotgames.com", gotHost)
	assert.Equal(t, "/riot/account/v1/accounts/by-riot-id/Hide%20on%20bush/KR1?api_key=RGAPI-test", gotURI)
	assert.Equal(t, "abc-123", account.Puuid)
	assert.Equal(t, "Hide on bush", account.GameName)
}

func TestGetSummonerByPUUID(t *testing.T) {
	var gotURI, gotHost string
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		gotHost = r.Host
		fmt.Fprint(w, `{"id":"enc-id","puuid":"abc-123","profileIconId":29,"summonerLevel":745}`)
	})

	summoner, err := client.GetSummonerByPUUID(context.Background(), "abc-123", "RGAPI-test")
	require.NoError(t, err)

	assert.Equal(t, "kr.api.riotgames.com", gotHost)
	assert.Equal(t, "/lol/summoner/v4/summoners/by-puuid/abc-123?api_key=RGAPI-test", gotURI)
	assert.Equal(t, 745, summoner.SummonerLevel)
	assert.Equal(t, 29, summoner.ProfileIconID)
}

func TestGetLeagueEntriesByPUUID(t *testing.T) {
	var gotURI string
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		fmt.Fprint(w, `[
			{"queueType":"RANKED_SOLO_5x5","tier":"CHALLENGER","rank":"I","leaguePoints":1302,"wins":100,"losses":20},
			{"queueType":"RANKED_FLEX_SR","tier":"DIAMOND","rank":"II","leaguePoints":40,"wins":12,"losses":9}
		]`)
	})

	entries, err := client.GetLeagueEntriesByPUUID(context.Background(), "abc-123", "RGAPI-test")
	require.NoError(t, err)

	assert.Equal(t, "/lol/league/v4/entries/by-puuid/abc-123?api_key=RGAPI-test", gotURI)
	require.Len(t, entries, 2)
	assert.Equal(t, "CHALLENGER", entries[0].Tier)
	assert.Equal(t, 100, entries[0].Wins)
}

func TestGetTopMasteries(t *testing.T) {
	var gotURI string
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		fmt.Fprint(w, `[{"championId":7,"championLevel":7,"championPoints":524301}]`)
	})

	masteries, err := client.GetTopMasteries(context.Background(), "abc-123", "RGAPI-test", 3)
	require.NoError(t, err)

	assert.Equal(t, "/lol/champion-mastery/v4/champion-masteries/by-puuid/abc-123/top?count=3&api_key=RGAPI-test", gotURI)
	require.Len(t, masteries, 1)
	assert.Equal(t, 524301, masteries[0].ChampionPoints)
}

func TestGetMatchIDs(t *testing.T) {
	var gotURI string
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		fmt.Fprint(w, `["KR_100","KR_101"]`)
	})

	ids, err := client.GetMatchIDs(context.Background(), "abc-123", "RGAPI-test", 0, 5)
	require.NoError(t, err)

	assert.Equal(t, "/lol/match/v5/matches/by-puuid/abc-123/ids?start=0&count=5&api_key=RGAPI-test", gotURI)
	assert.Equal(t, []string{"KR_100", "KR_101"}, ids)
}

func TestGetMatch(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"metadata": {"matchId": "KR_100", "participants": ["abc-123"]},
			"info": {
				"gameMode": "CLASSIC",
				"queueId": 420,
				"gameDuration": 1860,
				"gameEndTimestamp": 1700000000000,
				"participants": [{
					"puuid": "abc-123", "championId": 7, "win": true,
					"kills": 10, "deaths": 2, "assists": 8,
					"totalMinionsKilled": 200, "neutralMinionsKilled": 12,
					"visionScore": 24,
					"item0": 3157, "item1": 0, "item2": 0, "item3": 0,
					"item4": 0, "item5": 0, "item6": 3364
				}]
			}
		}`)
	})

	match, err := client.GetMatch(context.Background(), "KR_100", "RGAPI-test")
	require.NoError(t, err)

	assert.Equal(t, "KR_100", match.Metadata.MatchID)
	require.Len(t, match.Info.Participants, 1)
	p := match.Info.Participants[0]
	assert.Equal(t, 212, p.CreepScore())
	assert.Equal(t, []int{3157, 0, 0, 0, 0, 0, 3364}, p.Items())
}

func TestGetActiveGameNotInGame(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	game, err := client.GetActiveGame(context.Background(), "abc-123", "RGAPI-test")
	require.Error(t, err)
	assert.Nil(t, game)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Equal(t, "spectator", statusErr.Endpoint)
}

func TestStatusErrorMessageEmbedsStatus(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.GetAccountByRiotID(context.Background(), "Faker", "KR1", "RGAPI-bad")
	require.Error(t, err)
	assert.EqualError(t, err, "account lookup failed: status 403")
}

func TestDecodeFailure(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	})

	_, err := client.GetSummonerByPUUID(context.Background(), "abc-123", "RGAPI-test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode failed")

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}
