package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"league-tracker/internal/constants"

	"github.com/valyala/fasthttp"
)

// StatusError is returned for any non-200 upstream answer so callers can
// distinguish transport failures from decode failures and surface the
// upstream status code.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s lookup failed: status %d", e.Endpoint, e.Code)
}

type Client struct {
	client *fasthttp.Client
}

func NewClient() *Client {
	return &Client{
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// GetAccountByRiotID resolves a name#tag Riot ID to an account. The returned
// puuid is the join key for every other lookup.
func (c *Client) GetAccountByRiotID(ctx context.Context, gameName, tagLine, apiKey string) (*Account, error) {
	u := fmt.Sprintf("https://asia.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s?api_key=%s",
		url.PathEscape(gameName), url.PathEscape(tagLine), apiKey)
	return doRequest[Account](ctx, c, u, "account")
}

func (c *Client) GetSummonerByPUUID(ctx context.Context, puuid, apiKey string) (*Summoner, error) {
	u := fmt.Sprintf("https://kr.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s?api_key=%s", puuid, apiKey)
	return doRequest[Summoner](ctx, c, u, "summoner")
}

func (c *Client) GetLeagueEntriesByPUUID(ctx context.Context, puuid, apiKey string) ([]LeagueEntry, error) {
	u := fmt.Sprintf("https://kr.api.riotgames.com/lol/league/v4/entries/by-puuid/%s?api_key=%s", puuid, apiKey)
	entries, err := doRequest[[]LeagueEntry](ctx, c, u, "league")
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func (c *Client) GetTopMasteries(ctx context.Context, puuid, apiKey string, count int) ([]ChampionMastery, error) {
	u := fmt.Sprintf("https://kr.api.riotgames.com/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/top?count=%d&api_key=%s", puuid, count, apiKey)
	masteries, err := doRequest[[]ChampionMastery](ctx, c, u, "mastery")
	if err != nil {
		return nil, err
	}
	return *masteries, nil
}

func (c *Client) GetMatchIDs(ctx context.Context, puuid, apiKey string, start, count int) ([]string, error) {
	u := fmt.Sprintf("https://asia.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d&api_key=%s", puuid, start, count, apiKey)
	ids, err := doRequest[[]string](ctx, c, u, "match list")
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *Client) GetMatch(ctx context.Context, matchID, apiKey string) (*Match, error) {
	u := fmt.Sprintf("https://asia.api.riotgames.com/lol/match/v5/matches/%s?api_key=%s", matchID, apiKey)
	return doRequest[Match](ctx, c, u, "match")
}

// GetActiveGame returns the spectator snapshot for a player currently in a
// game. Riot answers 404 when the player is not in one, so callers should
// treat a StatusError here as the ordinary idle case.
func (c *Client) GetActiveGame(ctx context.Context, puuid, apiKey string) (*CurrentGameInfo, error) {
	u := fmt.Sprintf("https://kr.api.riotgames.com/lol/spectator/v5/active-games/by-summoner/%s?api_key=%s", puuid, apiKey)
	return doRequest[CurrentGameInfo](ctx, c, u, "spectator")
}

func doRequest[T any](ctx context.Context, client *Client, url, endpoint string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%s decode failed: %w", endpoint, err)
	}
	return &result, nil
}
