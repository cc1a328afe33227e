package menu

import (
	"context"
	"log"
)

// Source reports which catalog a snapshot came from, so callers and tests can
// tell the fallback path from the live one.
type Source int

const (
	SourceLive Source = iota
	SourceFallback
)

func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "live"
}

// Provider returns the current sellable catalog. It never fails outward: an
// empty or unreachable store yields the built-in sample menu instead.
type Provider struct {
	repo Repository
}

func NewProvider(repo Repository) *Provider { return &Provider{repo: repo} }

func (p *Provider) Catalog(ctx context.Context) ([]Item, Source) {
	if p.repo != nil {
		items, err := p.repo.List(ctx)
		if err == nil && len(items) > 0 {
			return items, SourceLive
		}
		if err != nil {
			log.Printf("[menu] store fetch failed, using sample menu: %v", err)
		}
	}
	return Sample(), SourceFallback
}
