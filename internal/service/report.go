package service

import (
	"context"
	"errors"
	"fmt"

	"league-tracker/internal/config"
	"league-tracker/internal/constants"
	"league-tracker/internal/ddragon"
	"league-tracker/internal/domain"
	"league-tracker/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// RiotAPI is the upstream surface the orchestrator needs; satisfied by
// *riot.Client and mocked in tests.
type RiotAPI interface {
	GetAccountByRiotID(ctx context.Context, gameName, tagLine, apiKey string) (*riot.Account, error)
	GetSummonerByPUUID(ctx context.Context, puuid, apiKey string) (*riot.Summoner, error)
	GetLeagueEntriesByPUUID(ctx context.Context, puuid, apiKey string) ([]riot.LeagueEntry, error)
	GetTopMasteries(ctx context.Context, puuid, apiKey string, count int) ([]riot.ChampionMastery, error)
	GetMatchIDs(ctx context.Context, puuid, apiKey string, start, count int) ([]string, error)
	GetMatch(ctx context.Context, matchID, apiKey string) (*riot.Match, error)
	GetActiveGame(ctx context.Context, puuid, apiKey string) (*riot.CurrentGameInfo, error)
}

// CatalogSource provides the champion catalog; satisfied by *ddragon.Cache.
type CatalogSource interface {
	Catalog(ctx context.Context) *ddragon.Catalog
}

type ReportService struct {
	riot    RiotAPI
	catalog CatalogSource
	cfg     *config.Config
	logger  zerolog.Logger
}

func NewReportService(riotClient RiotAPI, catalog CatalogSource, cfg *config.Config, logger zerolog.Logger) *ReportService {
	return &ReportService{riot: riotClient, catalog: catalog, cfg: cfg, logger: logger}
}

// GetPlayerReport aggregates every upstream lookup for one Riot ID into a
// single report. Account and summoner failures abort the aggregation; every
// other branch degrades to its documented default on failure.
func (s *ReportService) GetPlayerReport(ctx context.Context, gameName, tagLine, apiKey string) (*domain.PlayerReport, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("name", gameName).Str("tag", tagLine).Msg("building player report")

	// The catalog is independent of the account chain, so resolve it while
	// the account lookup is in flight.
	catalogCh := make(chan *ddragon.Catalog, 1)
	go func() {
		catalogCh <- s.catalog.Catalog(ctx)
	}()

	account, err := s.riot.GetAccountByRiotID(ctx, gameName, tagLine, apiKey)
	if err != nil {
		s.logger.Error().Err(err).Str("name", gameName).Str("tag", tagLine).Msg("failed to resolve account")
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	puuid := account.Puuid

	summoner, err := s.riot.GetSummonerByPUUID(ctx, puuid, apiKey)
	if err != nil {
		s.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to fetch summoner")
		return nil, fmt.Errorf("failed to fetch summoner: %w", err)
	}

	// Independent branches fan out together. Each swallows its own failure
	// and leaves its default in place, so one slow or broken endpoint never
	// costs the rest of the report.
	var (
		leagues   []riot.LeagueEntry
		masteries []riot.ChampionMastery
		matches   []*riot.Match
		liveGame  *riot.CurrentGameInfo
	)

	var g errgroup.Group
	g.Go(func() error {
		entries, err := s.riot.GetLeagueEntriesByPUUID(ctx, puuid, apiKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("puuid", puuid).Msg("ranked lookup degraded")
			return nil
		}
		leagues = entries
		return nil
	})
	g.Go(func() error {
		top, err := s.riot.GetTopMasteries(ctx, puuid, apiKey, s.cfg.TopMasteryCount)
		if err != nil {
			s.logger.Warn().Err(err).Str("puuid", puuid).Msg("mastery lookup degraded")
			return nil
		}
		masteries = top
		return nil
	})
	g.Go(func() error {
		matches = s.fetchRecentMatches(ctx, puuid, apiKey)
		return nil
	})
	g.Go(func() error {
		game, err := s.riot.GetActiveGame(ctx, puuid, apiKey)
		if err != nil {
			// Riot answers non-200 for a player who is simply not in a
			// game, so this is the common case rather than a failure.
			var statusErr *riot.StatusError
			if errors.As(err, &statusErr) {
				s.logger.Debug().Int("status", statusErr.Code).Str("puuid", puuid).Msg("no live game")
			} else {
				s.logger.Warn().Err(err).Str("puuid", puuid).Msg("live game lookup degraded")
			}
			return nil
		}
		liveGame = game
		return nil
	})
	g.Wait()

	catalog := <-catalogCh

	report := &domain.PlayerReport{
		RiotID: fmt.Sprintf("%s#%s", gameName, tagLine),
		Puuid:  puuid,
		Summoner: &domain.SummonerProfile{
			ID:             summoner.ID,
			Name:           summoner.Name,
			Level:          summoner.SummonerLevel,
			ProfileIconID:  summoner.ProfileIconID,
			ProfileIconURL: catalog.ProfileIconURL(summoner.ProfileIconID),
		},
		SoloRank:      standingForQueue(leagues, constants.QueueSolo),
		FlexRank:      standingForQueue(leagues, constants.QueueFlex),
		TopChampions:  masteryEntries(masteries, catalog),
		RecentMatches: matchSummaries(matches, puuid, catalog),
		LiveGame:      liveGameStatus(liveGame, puuid, catalog),
	}
	report.RecentStats = recentFormStats(report.RecentMatches)

	s.logger.Info().
		Str("puuid", puuid).
		Int("matches", len(report.RecentMatches)).
		Bool("in_game", report.LiveGame.InGame).
		Msg("player report built")

	return report, nil
}

// fetchRecentMatches lists the latest match ids and fetches their details
// concurrently. A failed detail fetch drops only that match; a failed listing
// drops the whole history. Upstream ordering is preserved.
func (s *ReportService) fetchRecentMatches(ctx context.Context, puuid, apiKey string) []*riot.Match {
	ids, err := s.riot.GetMatchIDs(ctx, puuid, apiKey, 0, s.cfg.MatchCount)
	if err != nil {
		s.logger.Warn().Err(err).Str("puuid", puuid).Msg("match list lookup degraded")
		return nil
	}

	fetched := make([]*riot.Match, len(ids))
	var g errgroup.Group
	g.SetLimit(constants.MatchFetchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			match, err := s.riot.GetMatch(ctx, id, apiKey)
			if err != nil {
				s.logger.Warn().Err(err).Str("match_id", id).Msg("match detail lookup degraded")
				return nil
			}
			fetched[i] = match
			return nil
		})
	}
	g.Wait()

	matches := make([]*riot.Match, 0, len(fetched))
	for _, m := range fetched {
		if m != nil {
			matches = append(matches, m)
		}
	}
	return matches
}

// standingForQueue selects the entry for a queue type, defaulting to the
// UNRANKED record when the player has none.
func standingForQueue(entries []riot.LeagueEntry, queueType string) *domain.RankedStanding {
	for _, entry := range entries {
		if entry.QueueType == queueType {
			return &domain.RankedStanding{
				Tier:         entry.Tier,
				Rank:         entry.Rank,
				LeaguePoints: entry.LeaguePoints,
				Wins:         entry.Wins,
				Losses:       entry.Losses,
				WinRate:      domain.WinRatePercent(entry.Wins, entry.Losses),
			}
		}
	}
	return domain.UnrankedStanding()
}

func masteryEntries(masteries []riot.ChampionMastery, catalog *ddragon.Catalog) []domain.MasteryEntry {
	entries := make([]domain.MasteryEntry, 0, len(masteries))
	for _, m := range masteries {
		name, image := championLabel(catalog, m.ChampionID)
		entries = append(entries, domain.MasteryEntry{
			ChampionID:       m.ChampionID,
			ChampionName:     name,
			ChampionImageURL: image,
			Level:            m.ChampionLevel,
			Points:           m.ChampionPoints,
		})
	}
	return entries
}

func matchSummaries(matches []*riot.Match, puuid string, catalog *ddragon.Catalog) []domain.MatchSummary {
	summaries := make([]domain.MatchSummary, 0, len(matches))
	for _, match := range matches {
		participant, ok := findParticipant(match, puuid)
		if !ok {
			continue
		}
		name, image := championLabel(catalog, participant.ChampionID)
		summaries = append(summaries, domain.MatchSummary{
			MatchID:          match.Metadata.MatchID,
			GameMode:         match.Info.GameMode,
			QueueID:          match.Info.QueueID,
			DurationMinutes:  int(match.Info.GameDuration / 60),
			EndTimestamp:     match.Info.GameEndTimestamp,
			Win:              participant.Win,
			ChampionID:       participant.ChampionID,
			ChampionName:     name,
			ChampionImageURL: image,
			Kills:            participant.Kills,
			Deaths:           participant.Deaths,
			Assists:          participant.Assists,
			KDA:              domain.FormatKDA(participant.Kills, participant.Deaths, participant.Assists),
			CreepScore:       participant.CreepScore(),
			VisionScore:      participant.VisionScore,
			Items:            participant.Items(),
		})
	}
	return summaries
}

func findParticipant(match *riot.Match, puuid string) (riot.Participant, bool) {
	for _, p := range match.Info.Participants {
		if p.Puuid == puuid {
			return p, true
		}
	}
	return riot.Participant{}, false
}

func liveGameStatus(game *riot.CurrentGameInfo, puuid string, catalog *ddragon.Catalog) *domain.LiveGameStatus {
	if game == nil {
		return &domain.LiveGameStatus{InGame: false, CurrentGame: nil}
	}

	current := &domain.CurrentGame{
		GameID:         game.GameID,
		GameMode:       game.GameMode,
		GameType:       game.GameType,
		StartTimestamp: game.GameStartTime,
		ElapsedSeconds: game.GameLength,
	}
	for _, p := range game.Participants {
		if p.Puuid == puuid {
			name, image := championLabel(catalog, p.ChampionID)
			current.ChampionID = p.ChampionID
			current.ChampionName = name
			current.ChampionImageURL = image
			current.TeamID = p.TeamID
			break
		}
	}

	return &domain.LiveGameStatus{InGame: true, CurrentGame: current}
}

// recentFormStats aggregates the resolved match window; nil when no matches
// survived so the field is omitted from the report.
func recentFormStats(matches []domain.MatchSummary) *domain.RecentFormStats {
	if len(matches) == 0 {
		return nil
	}

	stats := &domain.RecentFormStats{Games: len(matches)}
	for _, m := range matches {
		if m.Win {
			stats.Wins++
		} else {
			stats.Losses++
		}
		stats.Kills += m.Kills
		stats.Deaths += m.Deaths
		stats.Assists += m.Assists
	}
	stats.WinRate = domain.WinRatePercent(stats.Wins, stats.Losses)
	stats.KDA = domain.FormatKDA(stats.Kills, stats.Deaths, stats.Assists)
	return stats
}

// championLabel resolves a champion id through the catalog, substituting a
// generic label when the catalog is degraded or behind the live patch.
func championLabel(catalog *ddragon.Catalog, championID int) (name, image string) {
	if info, ok := catalog.Champion(championID); ok {
		return info.Name, info.Image
	}
	return fmt.Sprintf("Champion %d", championID), ""
}
