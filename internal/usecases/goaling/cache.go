package goaling

import (
	"sync"
	"time"

	"github.com/vfg2006/store-goals-api/internal/domain"
)

type cacheEntry struct {
	view      *domain.DailyQuotaView
	expiresAt time.Time
}

// quotaCache guarda as cotas calculadas agrupadas por loja
type quotaCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	byStore map[string]map[string]cacheEntry
}

func newQuotaCache(ttl time.Duration) *quotaCache {
	return &quotaCache{
		ttl:     ttl,
		byStore: make(map[string]map[string]cacheEntry),
	}
}

func cacheKey(collaboratorID string, date time.Time) string {
	return collaboratorID + ":" + date.Format(time.DateOnly)
}

func (c *quotaCache) get(storeID, collaboratorID string, date, now time.Time) (*domain.DailyQuotaView, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.byStore[storeID][cacheKey(collaboratorID, date)]
	if !ok || now.After(entry.expiresAt) {
		return nil, false
	}
	return entry.view, true
}

func (c *quotaCache) put(storeID, collaboratorID string, date, now time.Time, view *domain.DailyQuotaView) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entries, ok := c.byStore[storeID]
	if !ok {
		entries = make(map[string]cacheEntry)
		c.byStore[storeID] = entries
	}
	entries[cacheKey(collaboratorID, date)] = cacheEntry{view: view, expiresAt: now.Add(c.ttl)}
}

func (c *quotaCache) invalidate(storeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byStore, storeID)
}
