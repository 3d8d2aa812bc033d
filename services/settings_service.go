package services

import (
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"hotel-site-backend/repository"
)

// DefaultSettingsTTL is how long a fetched setting stays cached before the
// next Get refetches it from the store.
const DefaultSettingsTTL = time.Minute

type cachedSetting struct {
	value     string
	found     bool
	fetchedAt time.Time
}

// SettingsService is a read-through cache over the site_settings table.
// Missing keys and store faults both fall back to the caller's default, so
// policy lookups never fail the surrounding request.
type SettingsService struct {
	store SettingStore
	ttl   time.Duration

	mu    sync.RWMutex
	cache map[string]cachedSetting

	now func() time.Time
}

func NewSettingsService(store SettingStore, ttl time.Duration) *SettingsService {
	if ttl <= 0 {
		ttl = DefaultSettingsTTL
	}
	return &SettingsService{
		store: store,
		ttl:   ttl,
		cache: make(map[string]cachedSetting),
		now:   time.Now,
	}
}

func (s *SettingsService) Get(key, def string) string {
	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()
	if ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		if !entry.found {
			return def
		}
		return entry.value
	}

	value, err := s.store.GetValue(key)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			s.put(key, cachedSetting{found: false, fetchedAt: s.now()})
			return def
		}
		// Store fault: keep whatever we had, do not cache the failure.
		log.Printf("warning: settings lookup %q failed: %v", key, err)
		if ok && entry.found {
			return entry.value
		}
		return def
	}

	s.put(key, cachedSetting{value: value, found: true, fetchedAt: s.now()})
	return value
}

func (s *SettingsService) GetInt(key string, def int) int {
	raw := s.Get(key, strconv.Itoa(def))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// Invalidate drops a cached key so the next Get refetches it. Called by the
// admin settings handler after a write.
func (s *SettingsService) Invalidate(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
}

func (s *SettingsService) put(key string, entry cachedSetting) {
	s.mu.Lock()
	s.cache[key] = entry
	s.mu.Unlock()
}
