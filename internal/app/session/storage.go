package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// Storage is a flat string key/value store owned by the client.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// MemoryStorage keeps keys in process memory. It backs tests and tools
// that drive guards without a browser.
type MemoryStorage struct {
	items *cache.Cache
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	v, ok := m.items.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.items.Set(key, value, cache.NoExpiration)
}

func (m *MemoryStorage) Remove(key string) {
	m.items.Delete(key)
}

// Len reports the number of stored keys.
func (m *MemoryStorage) Len() int {
	return m.items.ItemCount()
}

// CookieOptions control the attributes of cookies written by CookieStorage.
type CookieOptions struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	SameSite http.SameSite
}

// CookieStorage exposes the request's cookies as a Storage. Writes are
// emitted as Set-Cookie headers and also recorded locally so later reads in
// the same request observe them.
type CookieStorage struct {
	c       *gin.Context
	opts    CookieOptions
	pending map[string]*string
}

func NewCookieStorage(c *gin.Context, opts CookieOptions) *CookieStorage {
	if opts.Path == "" {
		opts.Path = "/"
	}
	if opts.SameSite == 0 {
		opts.SameSite = http.SameSiteLaxMode
	}
	return &CookieStorage{c: c, opts: opts, pending: make(map[string]*string)}
}

func (s *CookieStorage) Get(key string) (string, bool) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	v, err := s.c.Cookie(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *CookieStorage) Set(key, value string) {
	s.pending[key] = &value
	s.c.SetSameSite(s.opts.SameSite)
	// The keys are read by page scripts too, so they are never HttpOnly.
	s.c.SetCookie(key, value, s.opts.MaxAge, s.opts.Path, s.opts.Domain, s.opts.Secure, false)
}

func (s *CookieStorage) Remove(key string) {
	s.pending[key] = nil
	s.c.SetSameSite(s.opts.SameSite)
	s.c.SetCookie(key, "", -1, s.opts.Path, s.opts.Domain, s.opts.Secure, false)
}
