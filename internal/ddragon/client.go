// Package ddragon reads the public Data Dragon reference catalogue.
package ddragon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
)

const (
	// DefaultBaseURL is the public Data Dragon host
	DefaultBaseURL = "https://ddragon.leagueoflegends.com"
	// SummonersRiftMapID is the key of the standard map in item.maps
	SummonersRiftMapID = "11"

	defaultTimeout = 15 * time.Second
)

// Client fetches versions, champions and items
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new Client. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// LatestVersion returns the newest published catalogue version
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.getJSON(ctx, "/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("%w: empty version list", domain.ErrReferenceSourceUnavailable)
	}
	return versions[0], nil
}

type championDoc struct {
	Data map[string]struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"data"`
}

// Champions returns the champion list for version, ordered by id
func (c *Client) Champions(ctx context.Context, version string) ([]domain.Champion, error) {
	var doc championDoc
	if err := c.getJSON(ctx, "/cdn/"+version+"/data/en_US/champion.json", &doc); err != nil {
		return nil, err
	}

	champions := make([]domain.Champion, 0, len(doc.Data))
	for _, entry := range doc.Data {
		id, err := strconv.Atoi(entry.Key)
		if err != nil {
			logger.FromContext(ctx).Warn("Skipping champion with non-numeric key", "key", entry.Key, "name", entry.Name)
			continue
		}
		champions = append(champions, domain.Champion{ID: id, Name: entry.Name})
	}
	sort.Slice(champions, func(i, j int) bool { return champions[i].ID < champions[j].ID })
	return champions, nil
}

// ItemEntry is one item.json record
type ItemEntry struct {
	Name             string          `json:"name"`
	RequiredAlly     string          `json:"requiredAlly"`
	RequiredChampion string          `json:"requiredChampion"`
	InStore          *bool           `json:"inStore"`
	Maps             map[string]bool `json:"maps"`
	Gold             struct {
		Purchasable *bool `json:"purchasable"`
	} `json:"gold"`
}

// Purchasable reports whether a normal player can buy the item on Summoner's Rift
func (e ItemEntry) Purchasable() bool {
	if e.RequiredAlly != "" || e.RequiredChampion != "" {
		return false
	}
	if e.Gold.Purchasable != nil && !*e.Gold.Purchasable {
		return false
	}
	if onRift, ok := e.Maps[SummonersRiftMapID]; ok && !onRift {
		return false
	}
	if e.InStore != nil && !*e.InStore {
		return false
	}
	return true
}

type itemDoc struct {
	Data map[string]ItemEntry `json:"data"`
}

// Items returns purchasable items for version, ordered by id
func (c *Client) Items(ctx context.Context, version string) ([]domain.Item, error) {
	var doc itemDoc
	if err := c.getJSON(ctx, "/cdn/"+version+"/data/en_US/item.json", &doc); err != nil {
		return nil, err
	}
	return FilterItems(doc.Data), nil
}

// FilterItems keeps purchasable entries with numeric ids
func FilterItems(entries map[string]ItemEntry) []domain.Item {
	items := make([]domain.Item, 0, len(entries))
	for key, entry := range entries {
		id, err := strconv.Atoi(key)
		if err != nil || !entry.Purchasable() {
			continue
		}
		items = append(items, domain.Item{ID: id, Name: entry.Name})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(domain.ErrReferenceSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", domain.ErrReferenceSourceUnavailable, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
