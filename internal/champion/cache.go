package champion

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// nameCache maps folded champion names to stored champions.
// Misses are not cached so a newly created champion resolves at once.
type nameCache struct {
	lru *expirable.LRU[string, domain.Champion]
}

func newNameCache(size int, ttl time.Duration) *nameCache {
	return &nameCache{lru: expirable.NewLRU[string, domain.Champion](size, nil, ttl)}
}

// nameKey folds case so "AHRI" and "ahri" share an entry
func nameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func (c *nameCache) Get(name string) (domain.Champion, bool) {
	return c.lru.Get(nameKey(name))
}

func (c *nameCache) Add(champ domain.Champion) {
	c.lru.Add(nameKey(champ.Name), champ)
}

// Clear drops every entry, used after writes to the catalogue
func (c *nameCache) Clear() {
	c.lru.Purge()
}
