package riot

// Account is the account-v1 payload for a Riot ID lookup.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the summoner-v4 payload.
type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	Puuid         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntry is one ranked ladder entry from league-v4; a player has at most
// one entry per queue type.
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Puuid        string `json:"puuid"`
	HotStreak    bool   `json:"hotStreak"`
	FreshBlood   bool   `json:"freshBlood"`
}

// ChampionMastery is one champion-mastery-v4 entry, already ordered by points
// descending by the upstream.
type ChampionMastery struct {
	ChampionID     int    `json:"championId"`
	ChampionLevel  int    `json:"championLevel"`
	ChampionPoints int    `json:"championPoints"`
	Puuid          string `json:"puuid"`
	LastPlayTime   int64  `json:"lastPlayTime"`
}

// Match is the match-v5 detail payload, trimmed to the fields the report uses.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameMode         string        `json:"gameMode"`
	GameType         string        `json:"gameType"`
	QueueID          int           `json:"queueId"`
	GameDuration     int64         `json:"gameDuration"`
	GameEndTimestamp int64         `json:"gameEndTimestamp"`
	Participants     []Participant `json:"participants"`
}

type Participant struct {
	Puuid                 string `json:"puuid"`
	ChampionID            int    `json:"championId"`
	ChampionName          string `json:"championName"`
	TeamID                int    `json:"teamId"`
	Win                   bool   `json:"win"`
	Kills                 int    `json:"kills"`
	Deaths                int    `json:"deaths"`
	Assists               int    `json:"assists"`
	TotalMinionsKilled    int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled  int    `json:"neutralMinionsKilled"`
	VisionScore           int    `json:"visionScore"`
	Item0                 int    `json:"item0"`
	Item1                 int    `json:"item1"`
	Item2                 int    `json:"item2"`
	Item3                 int    `json:"item3"`
	Item4                 int    `json:"item4"`
	Item5                 int    `json:"item5"`
	Item6                 int    `json:"item6"`
}

// Items returns the seven item slots in inventory order.
func (p Participant) Items() []int {
	return []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// CreepScore is lane plus jungle minions.
func (p Participant) CreepScore() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

// CurrentGameInfo is the spectator-v5 payload for an in-progress game.
type CurrentGameInfo struct {
	GameID        int64                    `json:"gameId"`
	GameMode      string                   `json:"gameMode"`
	GameType      string                   `json:"gameType"`
	GameStartTime int64                    `json:"gameStartTime"`
	GameLength    int64                    `json:"gameLength"`
	Participants  []CurrentGameParticipant `json:"participants"`
}

type CurrentGameParticipant struct {
	Puuid      string `json:"puuid"`
	ChampionID int    `json:"championId"`
	TeamID     int    `json:"teamId"`
}
