package domain

// PlayerReport is the flattened aggregation response for one Riot ID.
// Optional upstream lookups that fail leave their section at its documented
// default instead of failing the report; Error is non-empty only when the
// whole aggregation failed.
type PlayerReport struct {
	RiotID        string           `json:"riotId"`
	Puuid         string           `json:"puuid"`
	Summoner      *SummonerProfile `json:"summoner"`
	SoloRank      *RankedStanding  `json:"soloRank"`
	FlexRank      *RankedStanding  `json:"flexRank"`
	TopChampions  []MasteryEntry   `json:"topChampions"`
	RecentMatches []MatchSummary   `json:"recentMatches"`
	RecentStats   *RecentFormStats `json:"recentStats,omitempty"`
	LiveGame      *LiveGameStatus  `json:"liveGame"`
	Error         *string          `json:"error"`
}

type SummonerProfile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Level          int    `json:"level"`
	ProfileIconID  int    `json:"profileIconId"`
	ProfileIconURL string `json:"profileIconUrl"`
}

type RankedStanding struct {
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	WinRate      int    `json:"winRate"`
}

// UnrankedStanding is the standing reported for a queue the player has no
// entry in, and the substitute when the ranked lookup degrades.
func UnrankedStanding() *RankedStanding {
	return &RankedStanding{
		Tier:         "UNRANKED",
		Rank:         "",
		LeaguePoints: 0,
		Wins:         0,
		Losses:       0,
		WinRate:      0,
	}
}

type MasteryEntry struct {
	ChampionID       int    `json:"championId"`
	ChampionName     string `json:"championName"`
	ChampionImageURL string `json:"championImageUrl"`
	Level            int    `json:"level"`
	Points           int    `json:"points"`
}

type MatchSummary struct {
	MatchID          string `json:"matchId"`
	GameMode         string `json:"gameMode"`
	QueueID          int    `json:"queueId"`
	DurationMinutes  int    `json:"durationMinutes"`
	EndTimestamp     int64  `json:"endTimestamp"`
	Win              bool   `json:"win"`
	ChampionID       int    `json:"championId"`
	ChampionName     string `json:"championName"`
	ChampionImageURL string `json:"championImageUrl"`
	Kills            int    `json:"kills"`
	Deaths           int    `json:"deaths"`
	Assists          int    `json:"assists"`
	KDA              string `json:"kda"`
	CreepScore       int    `json:"creepScore"`
	VisionScore      int    `json:"visionScore"`
	Items            []int  `json:"items"`
}

// RecentFormStats aggregates the sampled match window; present in the report
// only when at least one match was resolved.
type RecentFormStats struct {
	Games   int    `json:"games"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	WinRate int    `json:"winRate"`
	Kills   int    `json:"kills"`
	Deaths  int    `json:"deaths"`
	Assists int    `json:"assists"`
	KDA     string `json:"kda"`
}

type LiveGameStatus struct {
	InGame      bool         `json:"inGame"`
	CurrentGame *CurrentGame `json:"currentGame"`
}

type CurrentGame struct {
	GameID           int64  `json:"gameId"`
	GameMode         string `json:"gameMode"`
	GameType         string `json:"gameType"`
	StartTimestamp   int64  `json:"startTimestamp"`
	ElapsedSeconds   int64  `json:"elapsedSeconds"`
	ChampionID       int    `json:"championId"`
	ChampionName     string `json:"championName"`
	ChampionImageURL string `json:"championImageUrl,omitempty"`
	TeamID           int    `json:"teamId"`
}
