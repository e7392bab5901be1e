package memcache

import (
	"strings"
	"sync"
	"time"
)

// GeocodeCache remembers resolved coordinates for an address so repeated
// city searches do not re-hit the geocoding endpoint.
type GeocodeCache interface {
	Get(address string) (lat, lng float64, ok bool)
	Set(address string, lat, lng float64, ttl time.Duration)
}

type geocodeEntry struct {
	lat       float64
	lng       float64
	expiresAt time.Time
}

type geocodeCache struct {
	mu   sync.RWMutex
	data map[string]geocodeEntry
}

func NewGeocodeCache() GeocodeCache {
	return &geocodeCache{data: make(map[string]geocodeEntry)}
}

func cacheKey(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func (c *geocodeCache) Get(address string) (float64, float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.data[cacheKey(address)]
	if !ok || time.Now().After(e.expiresAt) {
		return 0, 0, false
	}
	return e.lat, e.lng, true
}

func (c *geocodeCache) Set(address string, lat, lng float64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[cacheKey(address)] = geocodeEntry{
		lat:       lat,
		lng:       lng,
		expiresAt: time.Now().Add(ttl),
	}
}
