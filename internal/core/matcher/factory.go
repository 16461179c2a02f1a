package matcher

import (
	"sync"

	"menu-recommendation/internal/core/menu"
)

// Factory 카탈로그 fingerprint별로 Matcher를 하나만 만든다
type Factory struct {
	mu       sync.Mutex
	matchers map[string]*Matcher
}

// NewFactory 빈 팩토리
func NewFactory() *Factory {
	return &Factory{matchers: make(map[string]*Matcher)}
}

// For 같은 카탈로그면 같은 인스턴스를 돌려준다
func (f *Factory) For(catalog *menu.Catalog) *Matcher {
	key := catalog.Fingerprint()

	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok := f.matchers[key]; ok {
		return m
	}
	m := New(catalog.Menus())
	f.matchers[key] = m
	return m
}

// Reset 캐시된 Matcher를 모두 버린다
func (f *Factory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matchers = make(map[string]*Matcher)
}

// Size 캐시된 Matcher 수
func (f *Factory) Size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.matchers)
}
