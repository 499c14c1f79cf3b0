package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"league-tracker/internal/config"

	"github.com/valyala/fasthttp"
)

// ErrUnauthorized marks an upstream auth rejection. Unlike ordinary non-2xx
// responses it is surfaced as an error: a rejected key is a configuration
// problem, not data absence.
var ErrUnauthorized = errors.New("riot api rejected the configured key")

type Client struct {
	apiKey string
	client *fasthttp.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey: cfg.RiotAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *Client) AccountByRiotID(ctx context.Context, cluster, name, tag string) (*AccountDTO, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		cluster, url.PathEscape(name), url.PathEscape(tag))
	return getJSON[AccountDTO](ctx, c, u)
}

func (c *Client) SummonerByPUUID(ctx context.Context, region, puuid string) (*SummonerDTO, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s", region, puuid)
	return getJSON[SummonerDTO](ctx, c, u)
}

func (c *Client) MatchIDs(ctx context.Context, cluster, puuid string, count int) ([]string, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?count=%d", cluster, puuid, count)
	ids, err := getJSON[[]string](ctx, c, u)
	if err != nil || ids == nil {
		return nil, err
	}
	return *ids, nil
}

func (c *Client) Match(ctx context.Context, cluster, matchID string) (*MatchDTO, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", cluster, matchID)
	return getJSON[MatchDTO](ctx, c, u)
}

// getJSON performs one authenticated GET. A non-success status means "this
// sub-resource could not be resolved" and yields (nil, nil); callers decide
// whether that degrades a single match or aborts the aggregation. There is
// no retry here: retrying is the fallback layer's job.
func getJSON[T any](ctx context.Context, c *Client, u string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", c.apiKey)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	switch status := resp.StatusCode(); {
	case status == fasthttp.StatusUnauthorized || status == fasthttp.StatusForbidden:
		return nil, fmt.Errorf("%w (status %d)", ErrUnauthorized, status)
	case status != fasthttp.StatusOK:
		return nil, nil
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decoding riot response: %w", err)
	}
	return &result, nil
}
