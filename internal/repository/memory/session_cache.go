package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionCache remembers which session id a device resolved to, so repeated
// resolutions for the same device return the same id without touching the
// store. Losing an entry is harmless: resolution falls back to the store.
type SessionCache struct {
	cache *cache.Cache
}

func NewSessionCache() *SessionCache {
	// Entries outlive any realistic page session; expired ones are purged
	// hourly.
	return &SessionCache{
		cache: cache.New(24*time.Hour, 1*time.Hour),
	}
}

func (c *SessionCache) Get(deviceId string) (string, bool) {
	if x, found := c.cache.Get(deviceId); found {
		return x.(string), true
	}
	return "", false
}

func (c *SessionCache) Put(deviceId, sessionId string) {
	c.cache.Set(deviceId, sessionId, cache.DefaultExpiration)
}

func (c *SessionCache) Forget(deviceId string) {
	c.cache.Delete(deviceId)
}
