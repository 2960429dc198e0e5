package revalidate

import "sync"

// Well-known cache partition keys. Tags name collections, paths name the
// pages that render them; both share one namespace.
const (
	TagProjects = "PROJECTS"
	TagPosts    = "POSTS"

	PathDashboard         = "/dashboard"
	PathDashboardProjects = "/dashboard/projects"
	PathDashboardBlogs    = "/dashboard/blogs"
	PathProjects          = "/projects"
	PathBlogs             = "/blogs"
)

// Store is a set of named cache partitions. A confirmed-successful mutation
// invalidates the partitions it affects; the next read of an invalidated
// key misses and refetches from the upstream.
type Store interface {
	Get(key string) (any, bool)
	Put(key string, value any)
	Invalidate(keys ...string)
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]any)}
}

func (s *memoryStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *memoryStore) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

func (s *memoryStore) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
}
