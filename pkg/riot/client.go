// Package riot is a minimal client for the Riot Games web API covering the
// account, match, summoner and league lookups needed to follow one player.
package riot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"karltracker/internal/models"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrAPIStatus         = errors.New("riot api error status")
	ErrMalformedResponse = errors.New("malformed riot api response")
)

const (
	SoloQueueType = "RANKED_SOLO_5x5"
	Unranked      = "Unranked"

	matchHistoryCount = 20
	maxBodySize       = 4 << 20
	defaultTimeout    = 10 * time.Second
	defaultTagLine    = "EUNE"
)

// Endpoint labels passed to a RequestObserver.
const (
	EndpointAccount  = "account"
	EndpointMatchIDs = "match_ids"
	EndpointMatch    = "match"
	EndpointSummoner = "summoner"
	EndpointLeague   = "league"
)

type Client interface {
	ResolvePlayerID(ctx context.Context, riotID string) (string, error)
	MostRecentMatch(ctx context.Context, puuid string) (string, error)
	MatchDetail(ctx context.Context, matchID string) (*models.MatchInfo, error)
	RankedStanding(ctx context.Context, puuid string) (string, error)
}

// RequestObserver is called once per API request. statusCode is 0 when the
// request never got a response.
type RequestObserver func(endpoint string, statusCode int, err error)

type HTTPClient struct {
	apiKey          string
	httpClient      *http.Client
	regionalBaseURL string
	platformBaseURL string
	defaultTagLine  string
	timeout         time.Duration
	observe         RequestObserver
}

type apiStatus struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

type statusEnvelope struct {
	Status jsoniter.RawMessage `json:"status"`
}

// NewHTTPClient builds a client for the given regional ("europe") and
// platform ("eun1") routing values.
func NewHTTPClient(apiKey, regional, platform string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		apiKey:          apiKey,
		httpClient:      &http.Client{},
		regionalBaseURL: fmt.Sprintf("https://%s.api.riotgames.com", regional),
		platformBaseURL: fmt.Sprintf("https://%s.api.riotgames.com", platform),
		defaultTagLine:  defaultTagLine,
		observe:         func(string, int, error) {},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 || c.httpClient.Timeout == 0 {
		timeout := c.timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
	return c
}

// ResolvePlayerID looks up the PUUID of a Riot ID ("Name#Tag"). A bare name
// uses the client's default tag line.
func (c *HTTPClient) ResolvePlayerID(ctx context.Context, riotID string) (string, error) {
	gameName, tagLine := c.splitRiotID(riotID)
	if gameName == "" || tagLine == "" {
		return "", fmt.Errorf("invalid riot id %q", riotID)
	}

	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName), url.PathEscape(tagLine))

	var account models.Account
	if err := c.get(ctx, EndpointAccount, c.regionalBaseURL, path, nil, &account); err != nil {
		return "", fmt.Errorf("failed to resolve puuid for %s: %w", riotID, err)
	}
	if account.PUUID == "" {
		return "", fmt.Errorf("failed to resolve puuid for %s: %w: empty puuid", riotID, ErrMalformedResponse)
	}

	return account.PUUID, nil
}

// MostRecentMatch returns the first id of the player's last 20 matches.
func (c *HTTPClient) MostRecentMatch(ctx context.Context, puuid string) (string, error) {
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids", url.PathEscape(puuid))
	query := url.Values{}
	query.Set("start", "0")
	query.Set("count", fmt.Sprintf("%d", matchHistoryCount))

	var matchIDs []string
	if err := c.get(ctx, EndpointMatchIDs, c.regionalBaseURL, path, query, &matchIDs); err != nil {
		return "", fmt.Errorf("failed to get match history: %w", err)
	}
	if len(matchIDs) == 0 {
		return "", fmt.Errorf("no match history for %s: %w", puuid, ErrMalformedResponse)
	}

	return matchIDs[0], nil
}

func (c *HTTPClient) MatchDetail(ctx context.Context, matchID string) (*models.MatchInfo, error) {
	path := fmt.Sprintf("/lol/match/v5/matches/%s", url.PathEscape(matchID))

	var match struct {
		Info *models.MatchInfo `json:"info"`
	}
	if err := c.get(ctx, EndpointMatch, c.regionalBaseURL, path, nil, &match); err != nil {
		return nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
	}
	if match.Info == nil {
		return nil, fmt.Errorf("match %s has no info: %w", matchID, ErrMalformedResponse)
	}

	return match.Info, nil
}

// RankedStanding formats the player's solo queue standing, e.g.
// "GOLD II (57 LP)", or Unranked when there is none.
func (c *HTTPClient) RankedStanding(ctx context.Context, puuid string) (string, error) {
	var summoner models.Summoner
	path := fmt.Sprintf("/lol/summoner/v4/summoners/by-puuid/%s", url.PathEscape(puuid))
	if err := c.get(ctx, EndpointSummoner, c.platformBaseURL, path, nil, &summoner); err != nil {
		return "", fmt.Errorf("failed to get summoner: %w", err)
	}
	if summoner.ID == "" {
		return "", fmt.Errorf("summoner without id: %w", ErrMalformedResponse)
	}

	var entries []models.LeagueEntry
	path = fmt.Sprintf("/lol/league/v4/entries/by-summoner/%s", url.PathEscape(summoner.ID))
	if err := c.get(ctx, EndpointLeague, c.platformBaseURL, path, nil, &entries); err != nil {
		return "", fmt.Errorf("failed to get league entries: %w", err)
	}

	return FormatStanding(entries), nil
}

// isSet reports whether a raw JSON value is present and truthy.
func isSet(raw jsoniter.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}

// FormatStanding picks the solo queue entry out of a league-v4 entry list.
func FormatStanding(entries []models.LeagueEntry) string {
	for _, e := range entries {
		if e.QueueType == SoloQueueType {
			return fmt.Sprintf("%s %s (%d LP)", e.Tier, e.Rank, e.LeaguePoints)
		}
	}
	return Unranked
}

func (c *HTTPClient) splitRiotID(riotID string) (string, string) {
	gameName, tagLine, found := strings.Cut(riotID, "#")
	if !found {
		tagLine = c.defaultTagLine
	}
	return strings.TrimSpace(gameName), strings.TrimSpace(tagLine)
}

// get performs a GET request and decodes the JSON body into result. A body
// carrying a Riot "status" object is always an error, whatever the HTTP code.
func (c *HTTPClient) get(ctx context.Context, endpoint, baseURL, path string, query url.Values, result interface{}) (err error) {
	statusCode := 0
	defer func() { c.observe(endpoint, statusCode, err) }()

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	statusCode = resp.StatusCode

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env statusEnvelope
		if err := json.Unmarshal(trimmed, &env); err == nil && isSet(env.Status) {
			var st apiStatus
			if json.Unmarshal(env.Status, &st) == nil && st.StatusCode != 0 {
				return fmt.Errorf("%w: %d %s", ErrAPIStatus, st.StatusCode, st.Message)
			}
			return fmt.Errorf("%w: status %s", ErrAPIStatus, env.Status)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: http %d", ErrAPIStatus, resp.StatusCode)
	}

	if err := json.Unmarshal(trimmed, result); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}
