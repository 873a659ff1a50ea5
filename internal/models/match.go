package models

type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type Summoner struct {
	ID            string `json:"id"`
	PUUID         string `json:"puuid"`
	SummonerLevel int64  `json:"summonerLevel"`
}

type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// MatchInfo is the "info" block of a match-v5 response.
type MatchInfo struct {
	GameDuration int64         `json:"gameDuration"` // seconds
	GameMode     string        `json:"gameMode"`
	QueueID      int           `json:"queueId"`
	Participants []Participant `json:"participants"`
}

type Participant struct {
	PUUID          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	ChampionName   string `json:"championName"`
	Kills          int    `json:"kills"`
	Deaths         int    `json:"deaths"`
	Assists        int    `json:"assists"`
	Win            bool   `json:"win"`
}

type KDA struct {
	Kills   int
	Deaths  int
	Assists int
}

// IsWinFor reports whether some participant with the given PUUID won.
func (m *MatchInfo) IsWinFor(puuid string) bool {
	for _, p := range m.Participants {
		if p.PUUID == puuid && p.Win {
			return true
		}
	}
	return false
}

// FindParticipant returns the first participant with the given PUUID, or nil.
func (m *MatchInfo) FindParticipant(puuid string) *Participant {
	for i := range m.Participants {
		if m.Participants[i].PUUID == puuid {
			return &m.Participants[i]
		}
	}
	return nil
}

// KDAFor returns the stat line of the given player, false if they did not play.
func (m *MatchInfo) KDAFor(puuid string) (KDA, bool) {
	p := m.FindParticipant(puuid)
	if p == nil {
		return KDA{}, false
	}
	return KDA{Kills: p.Kills, Deaths: p.Deaths, Assists: p.Assists}, true
}
