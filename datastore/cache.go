package datastore

import (
	"container/list"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/obadiaha/safe-trade-scout-v2/config"
	"github.com/obadiaha/safe-trade-scout-v2/model"
)

// CheckCache stores complete prior check results keyed by (chain, token).
type CheckCache interface {
	Get(chain, token string) (*model.CheckResult, bool)
	Set(chain, token string, result *model.CheckResult)
	Size() int
}

func CacheKey(chain, token string) string {
	return fmt.Sprintf("%s:%s", chain, strings.ToLower(token))
}

// NewCheckCache builds the configured cache backend, the in-memory LRU by
// default.
func NewCheckCache() CheckCache {
	if config.Conf.Cache.Backend == config.CacheBackendRedis {
		return NewRedisCache(config.Conf.Cache.TTL)
	}
	return NewMemoryCache(config.Conf.Cache.Capacity, config.Conf.Cache.TTL)
}

type cacheEntry struct {
	key       string
	result    *model.CheckResult
	expiresAt time.Time
}

// MemoryCache is a capacity and TTL bounded store. Eviction follows insertion
// order only, reads do not extend an entry's life. Expired entries are
// dropped lazily on lookup.
type MemoryCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	order    *list.List // front is the oldest insertion
	items    map[string]*list.Element
}

func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:      ttl,
		capacity: capacity,
		order:    list.New(),
		items:    map[string]*list.Element{},
	}
}

func (mc *MemoryCache) Get(chain, token string) (*model.CheckResult, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	element, ok := mc.items[CacheKey(chain, token)]
	if !ok {
		return nil, false
	}
	entry := element.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		mc.removeElement(element)
		return nil, false
	}
	return entry.result, true
}

// Set inserts or overwrites the entry with a fresh expiry. An overwrite
// counts as a new insertion for eviction ordering.
func (mc *MemoryCache) Set(chain, token string, result *model.CheckResult) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	key := CacheKey(chain, token)
	if element, ok := mc.items[key]; ok {
		mc.removeElement(element)
	}
	if mc.order.Len() >= mc.capacity {
		mc.evictOldest()
	}

	entry := &cacheEntry{key: key, result: result, expiresAt: time.Now().Add(mc.ttl)}
	mc.items[key] = mc.order.PushBack(entry)
}

// Size reports the live entry count. The TTL is uniform so insertion order is
// also expiry order, expired entries are swept from the front.
func (mc *MemoryCache) Size() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	now := time.Now()
	for mc.order.Len() > 0 {
		front := mc.order.Front()
		if !now.After(front.Value.(*cacheEntry).expiresAt) {
			break
		}
		mc.removeElement(front)
	}
	return len(mc.items)
}

func (mc *MemoryCache) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.order.Init()
	mc.items = map[string]*list.Element{}
}

func (mc *MemoryCache) evictOldest() {
	if front := mc.order.Front(); front != nil {
		mc.removeElement(front)
	}
}

func (mc *MemoryCache) removeElement(element *list.Element) {
	mc.order.Remove(element)
	delete(mc.items, element.Value.(*cacheEntry).key)
}
