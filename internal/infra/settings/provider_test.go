//go:build unit

package settings_test

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/infra"
	"tablebook/internal/infra/settings"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRestaurantConfig() config.RestaurantConfig {
	return config.RestaurantConfig{
		TimeZone:           "UTC",
		MaxCapacityPerSlot: 40,
		SettingsCacheTTL:   30 * time.Second,
	}
}

func TestProviderCachesWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSettingsReadStore(ctrl)
	fake := clock.NewFakeClock(time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC))
	provider := settings.NewProvider(store, testRestaurantConfig(), fake)

	store.EXPECT().Get(gomock.Any()).
		Return(&queries.SettingsView{MaxCapacityPerSlot: 12, Holidays: []string{"2026-12-25"}}, nil)

	first, err := provider.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, first.MaxCapacityPerSlot)

	// Second call inside the TTL must not hit the store.
	fake.Advance(10 * time.Second)
	second, err := provider.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProviderReloadsAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSettingsReadStore(ctrl)
	fake := clock.NewFakeClock(time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC))
	provider := settings.NewProvider(store, testRestaurantConfig(), fake)

	gomock.InOrder(
		store.EXPECT().Get(gomock.Any()).
			Return(&queries.SettingsView{MaxCapacityPerSlot: 12}, nil),
		store.EXPECT().Get(gomock.Any()).
			Return(&queries.SettingsView{MaxCapacityPerSlot: 20}, nil),
	)

	_, err := provider.Current(context.Background())
	require.NoError(t, err)

	fake.Advance(31 * time.Second)
	reloaded, err := provider.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, reloaded.MaxCapacityPerSlot)
}

func TestProviderInvalidateForcesReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSettingsReadStore(ctrl)
	fake := clock.NewFakeClock(time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC))
	provider := settings.NewProvider(store, testRestaurantConfig(), fake)

	gomock.InOrder(
		store.EXPECT().Get(gomock.Any()).
			Return(&queries.SettingsView{MaxCapacityPerSlot: 12}, nil),
		store.EXPECT().Get(gomock.Any()).
			Return(&queries.SettingsView{MaxCapacityPerSlot: 8}, nil),
	)

	_, err := provider.Current(context.Background())
	require.NoError(t, err)

	provider.Invalidate()

	// Still inside the TTL, but the cache was dropped.
	updated, err := provider.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, updated.MaxCapacityPerSlot)
}

func TestProviderMissingRowFallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSettingsReadStore(ctrl)
	fake := clock.NewFakeClock(time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC))
	provider := settings.NewProvider(store, testRestaurantConfig(), fake)

	store.EXPECT().Get(gomock.Any()).
		Return(nil, infra.WrapRepoErr("settings not found", errs.New("no rows"), infra.KindNotFound))

	got, err := provider.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40, got.MaxCapacityPerSlot)
	assert.Empty(t, got.Holidays)
}

func TestProviderPropagatesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSettingsReadStore(ctrl)
	fake := clock.NewFakeClock(time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC))
	provider := settings.NewProvider(store, testRestaurantConfig(), fake)

	store.EXPECT().Get(gomock.Any()).
		Return(nil, infra.WrapRepoErr("query failed", errs.New("connection refused")))

	_, err := provider.Current(context.Background())
	assert.Error(t, err)
}
