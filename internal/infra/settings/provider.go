package settings

import (
	"context"
	"sync"
	"time"

	"tablebook/internal/domain/schedule"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/queries"
)

// Provider caches the settings row for a short TTL so every availability
// request does not hit the database. Invalidate drops the cache after a
// settings update; when no row exists yet the deployment defaults apply.
type Provider struct {
	readStore queries.SettingsReadStore
	defaults  config.RestaurantConfig
	clock     clock.Clock
	ttl       time.Duration

	mu       sync.Mutex
	cached   schedule.Settings
	cachedAt time.Time
	warm     bool
}

func NewProvider(readStore queries.SettingsReadStore, cfg config.RestaurantConfig, clock clock.Clock) *Provider {
	return &Provider{
		readStore: readStore,
		defaults:  cfg,
		clock:     clock,
		ttl:       cfg.SettingsCacheTTL,
	}
}

func (p *Provider) Current(ctx context.Context) (schedule.Settings, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	if p.warm && now.Sub(p.cachedAt) < p.ttl {
		return p.cached, nil
	}

	view, err := p.readStore.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			settings := schedule.Settings{
				MaxCapacityPerSlot: p.defaults.MaxCapacityPerSlot,
				Holidays:           []string{},
			}
			p.cached = settings
			p.cachedAt = now
			p.warm = true
			return settings, nil
		}
		return schedule.Settings{}, err
	}

	settings := schedule.Settings{
		MaxCapacityPerSlot: view.MaxCapacityPerSlot,
		Holidays:           view.Holidays,
	}
	p.cached = settings
	p.cachedAt = now
	p.warm = true
	return settings, nil
}

func (p *Provider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.warm = false
}
