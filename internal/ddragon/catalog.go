package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"
)

const (
	baseURL         = "https://ddragon.leagueoflegends.com"
	fallbackVersion = "unknown"
	catalogKey      = "catalog"
)

// ChampionInfo is one catalog entry: the champion slug, display name and a
// fully-qualified square-asset URL.
type ChampionInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Catalog maps the numeric champion id (as a decimal string) to its info,
// plus the Data Dragon version the assets were resolved against.
type Catalog struct {
	Version   string                  `json:"version"`
	Champions map[string]ChampionInfo `json:"champions"`
}

// Champion is a total lookup; the boolean reports whether the catalog knows
// the id, so callers can substitute a generic label.
func (c *Catalog) Champion(id int) (ChampionInfo, bool) {
	info, ok := c.Champions[fmt.Sprintf("%d", id)]
	return info, ok
}

// ProfileIconURL builds the profile icon asset URL for the catalog's version.
func (c *Catalog) ProfileIconURL(iconID int) string {
	return fmt.Sprintf("%s/cdn/%s/img/profileicon/%d.png", baseURL, c.Version, iconID)
}

// Cache lazily fetches and memoizes the champion catalog for the life of the
// process. The catalog is never refreshed once populated; champion data only
// changes with game patches and a stale name or image URL is acceptable.
type Cache struct {
	client *fasthttp.Client
	store  *gocache.Cache
	group  singleflight.Group
	logger zerolog.Logger
	base   string
}

func NewCache(logger zerolog.Logger) *Cache {
	return &Cache{
		client: &fasthttp.Client{
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		store:  gocache.New(gocache.NoExpiration, 0),
		logger: logger,
		base:   baseURL,
	}
}

// Catalog returns the memoized catalog, populating it on first use. Population
// races are collapsed by singleflight; a failed population yields a degraded
// empty catalog that is not memoized, so a later request may retry.
func (c *Cache) Catalog(ctx context.Context) *Catalog {
	if cached, found := c.store.Get(catalogKey); found {
		return cached.(*Catalog)
	}

	result, err, _ := c.group.Do(catalogKey, func() (interface{}, error) {
		if cached, found := c.store.Get(catalogKey); found {
			return cached.(*Catalog), nil
		}

		catalog, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.store.Set(catalogKey, catalog, gocache.NoExpiration)
		return catalog, nil
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("champion catalog unavailable, serving degraded catalog")
		return &Catalog{Version: fallbackVersion, Champions: map[string]ChampionInfo{}}
	}

	return result.(*Catalog)
}

func (c *Cache) fetch(ctx context.Context) (*Catalog, error) {
	var versions []string
	if err := c.getJSON(ctx, c.base+"/api/versions.json", &versions); err != nil {
		return nil, fmt.Errorf("failed to fetch versions: %w", err)
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("no versions available")
	}
	version := versions[0]

	var payload struct {
		Data map[string]struct {
			ID    string `json:"id"`
			Key   string `json:"key"`
			Name  string `json:"name"`
			Image struct {
				Full string `json:"full"`
			} `json:"image"`
		} `json:"data"`
	}
	champURL := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", c.base, version)
	if err := c.getJSON(ctx, champURL, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch champions: %w", err)
	}

	// champion.json is keyed by slug; the report needs lookups by the numeric
	// id carried in mastery, match and spectator payloads.
	champions := make(map[string]ChampionInfo, len(payload.Data))
	for slug, champ := range payload.Data {
		champions[champ.Key] = ChampionInfo{
			ID:    slug,
			Name:  champ.Name,
			Image: fmt.Sprintf("%s/cdn/%s/img/champion/%s", c.base, version, champ.Image.Full),
		}
	}

	c.logger.Info().Str("version", version).Int("champions", len(champions)).Msg("champion catalog loaded")
	return &Catalog{Version: version, Champions: champions}, nil
}

func (c *Cache) getJSON(ctx context.Context, url string, out interface{}) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("ddragon returned status %d", resp.StatusCode())
	}

	return json.Unmarshal(resp.Body(), out)
}
