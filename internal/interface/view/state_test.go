package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

var allRegions = []Region{RegionAuth, RegionCatalog, RegionOrders, RegionAdmin}

func visibleRegions(m *Model) []Region {
	var out []Region
	for _, r := range allRegions {
		if m.Visible(r) {
			out = append(out, r)
		}
	}
	return out
}

func signedIn(t *testing.T, admin bool) *Model {
	t.Helper()
	m := NewModel()
	refresh, err := m.Apply(Event{Kind: EventLoggedIn, Admin: admin})
	require.NoError(t, err)
	require.Equal(t, RefreshDashboard, refresh)
	return m
}

func TestInitialStateShowsOnlyAuth(t *testing.T) {
	m := NewModel()

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Equal(t, []Region{RegionAuth}, visibleRegions(m))
}

func TestLoggedInShowsDashboard(t *testing.T) {
	m := signedIn(t, false)

	// 认证后默认进入双栏:目录与订单同时可见,认证区隐藏
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, SectionDashboard, m.Section())
	assert.Equal(t, []Region{RegionCatalog, RegionOrders}, visibleRegions(m))
}

func TestLoggedInHappensOncePerSession(t *testing.T) {
	m := signedIn(t, false)

	refresh, err := m.Apply(Event{Kind: EventLoggedIn})
	assert.ErrorIs(t, err, ErrAlreadyAuthenticated)
	assert.Equal(t, RefreshNone, refresh)
	assert.Equal(t, SectionDashboard, m.Section(), "非法转换不应改变模型")
}

func TestNavigateRequiresAuthentication(t *testing.T) {
	m := NewModel()

	for _, target := range []Section{SectionCatalog, SectionOrders, SectionAdmin} {
		_, err := m.Apply(Event{Kind: EventNavigate, Target: target})
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	}
	assert.Equal(t, []Region{RegionAuth}, visibleRegions(m))
}

func TestNavigation(t *testing.T) {
	m := signedIn(t, true)

	// 订单版块:导航即触发刷新
	refresh, err := m.Apply(Event{Kind: EventNavigate, Target: SectionOrders})
	require.NoError(t, err)
	assert.Equal(t, RefreshOrders, refresh)
	assert.Equal(t, []Region{RegionOrders}, visibleRegions(m))

	// 目录版块:走本地缓存,不触发拉取
	refresh, err = m.Apply(Event{Kind: EventNavigate, Target: SectionCatalog})
	require.NoError(t, err)
	assert.Equal(t, RefreshNone, refresh)
	assert.Equal(t, []Region{RegionCatalog}, visibleRegions(m))

	// 回到双栏
	refresh, err = m.Apply(Event{Kind: EventNavigate, Target: SectionDashboard})
	require.NoError(t, err)
	assert.Equal(t, RefreshDashboard, refresh)
	assert.Equal(t, []Region{RegionCatalog, RegionOrders}, visibleRegions(m))
}

func TestAdminSectionRequiresRole(t *testing.T) {
	m := signedIn(t, false)

	refresh, err := m.Apply(Event{Kind: EventNavigate, Target: SectionAdmin})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Equal(t, RefreshNone, refresh)
	assert.Equal(t, SectionDashboard, m.Section(), "被拒绝的导航不应改变版块")
}

func TestAdminSectionIsExclusive(t *testing.T) {
	m := signedIn(t, true)

	refresh, err := m.Apply(Event{Kind: EventNavigate, Target: SectionAdmin})
	require.NoError(t, err)
	assert.Equal(t, RefreshAdmin, refresh)

	// 进入管理区后其余版块全部隐藏
	assert.Equal(t, []Region{RegionAdmin}, visibleRegions(m))
}

func TestLoggedOutResetsEverything(t *testing.T) {
	m := signedIn(t, true)
	_, err := m.Apply(Event{Kind: EventNavigate, Target: SectionAdmin})
	require.NoError(t, err)

	refresh, err := m.Apply(Event{Kind: EventLoggedOut})
	require.NoError(t, err)
	assert.Equal(t, RefreshNone, refresh)

	// 登出后视图等价于一次全新启动:匿名、仅认证区、角色清零
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.False(t, m.Admin())
	assert.Equal(t, []Region{RegionAuth}, visibleRegions(m))

	// 再次登录走完整的一次性转换
	refresh, err = m.Apply(Event{Kind: EventLoggedIn})
	require.NoError(t, err)
	assert.Equal(t, RefreshDashboard, refresh)
}

func TestLoggedOutWhenAnonymous(t *testing.T) {
	m := NewModel()
	_, err := m.Apply(Event{Kind: EventLoggedOut})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAuthRegionNeverVisibleWhileAuthenticated(t *testing.T) {
	m := signedIn(t, true)

	for _, target := range []Section{SectionCatalog, SectionOrders, SectionAdmin, SectionDashboard} {
		_, err := m.Apply(Event{Kind: EventNavigate, Target: target})
		require.NoError(t, err)
		assert.False(t, m.Visible(RegionAuth), "已认证状态下认证区不应可见(section=%v)", target)
	}
}
