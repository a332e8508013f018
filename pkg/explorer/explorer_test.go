package explorer

import (
	"testing"

	"github.com/arthur-debert/actionkit/pkg/assets"
	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/icons"
	"github.com/arthur-debert/actionkit/pkg/routes"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMap(t *testing.T) *Map {
	t.Helper()
	m, err := New(Options{
		Routes: routes.NewBuilder("/app"),
		Assets: assets.NewResolver(config.Assets{CDNHost: "https://assets.appsmith.com", LocalPrefix: "/"}),
	})
	require.NoError(t, err)
	return m
}

func TestLookupGroup_CoversEveryKind(t *testing.T) {
	m := newTestMap(t)

	for _, kind := range types.AllActionKinds() {
		t.Run(string(kind), func(t *testing.T) {
			matches := 0
			for _, g := range m.Groups() {
				if g.Covers(kind) {
					matches++
				}
			}
			assert.Equal(t, 1, matches)

			g, ok := m.LookupGroup(kind)
			require.True(t, ok)
			assert.Contains(t, g.Types, kind)
			assert.Equal(t, DatasourcesGroup, g.GroupName)
			assert.NotEmpty(t, g.Key)
			assert.Equal(t, icons.DBQueryIcon(), g.Icon)
		})
	}
}

func TestLookupGroup_Miss(t *testing.T) {
	m := newTestMap(t)
	g, ok := m.LookupGroup(types.ActionKind("JS"))
	assert.False(t, ok)
	assert.Nil(t, g)
}

func TestGetURL(t *testing.T) {
	m := newTestMap(t)

	tests := []struct {
		kind types.ActionKind
		want string
	}{
		{types.ActionKindAPI, "/app/page-1/edit/api/act-1"},
		{types.ActionKindSaaS, "/app/page-1/edit/saas/google-sheets-plugin/api/act-1"},
		{types.ActionKindDB, "/app/page-1/edit/queries/act-1"},
		{types.ActionKindRemote, "/app/page-1/edit/queries/act-1"},
		{types.ActionKindAI, "/app/page-1/edit/queries/act-1"},
		{types.ActionKindInternal, "/app/page-1/edit/queries/act-1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			g, ok := m.LookupGroup(tt.kind)
			require.True(t, ok)

			first := g.GetURL("page-1", "act-1", tt.kind, nil)
			second := g.GetURL("page-1", "act-1", tt.kind, nil)
			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestResolveActionURL_SaaSIgnoresPluginPackage(t *testing.T) {
	b := routes.NewBuilder("/app")
	other := &types.PluginDescriptor{ID: "airtable", PackageName: "airtable-plugin", Type: types.ActionKindSaaS}

	got := ResolveActionURL(b, ResolveActionURLProps{
		Plugin:         other,
		ParentEntityID: "p",
		PluginType:     types.ActionKindSaaS,
		ID:             "a",
	})
	assert.Equal(t, "/app/p/edit/saas/"+SaaSConnectorPackage+"/api/a", got)
}

func TestGetIcon(t *testing.T) {
	m := newTestMap(t)
	g, ok := m.LookupGroup(types.ActionKindAPI)
	require.True(t, ok)

	restAPI := &types.PluginDescriptor{ID: "rest", PackageName: types.PackageRestAPI, Type: types.ActionKindAPI, IconLocation: "icons/rest.svg"}
	graphQL := &types.PluginDescriptor{ID: "gql", PackageName: types.PackageGraphQL, Type: types.ActionKindAPI, IconLocation: "icons/graphql.svg"}
	postgres := &types.PluginDescriptor{ID: "pg", PackageName: types.PackagePostgres, Type: types.ActionKindDB}
	postgresWithIcon := &types.PluginDescriptor{ID: "pg", PackageName: types.PackagePostgres, Type: types.ActionKindDB, IconLocation: "icons/foo.svg"}
	bare := &types.PluginDescriptor{ID: "ai", Type: types.ActionKindAI}

	post := types.ActionRecord{Name: "Api1", Kind: types.ActionKindAPI, Config: types.ActionConfiguration{HTTPMethod: "POST"}}
	noMethod := types.ActionRecord{Name: "Query1", Kind: types.ActionKindDB}

	tests := []struct {
		name       string
		action     types.ActionRecord
		plugin     *types.PluginDescriptor
		remoteIcon bool
		want       icons.Icon
		wantOK     bool
	}{
		{"method icon wins over asset", post, restAPI, false, icons.MethodIcon("POST"), true},
		{"remote icon override skips method", post, restAPI, true, icons.EntityIcon("https://assets.appsmith.com/icons/rest.svg", 16), true},
		{"graphql skips method", post, graphQL, false, icons.EntityIcon("https://assets.appsmith.com/icons/graphql.svg", 16), true},
		{"asset icon", noMethod, postgresWithIcon, false, icons.EntityIcon("https://assets.appsmith.com/icons/foo.svg", 16), true},
		{"database fallback", noMethod, postgres, false, icons.DBQueryIcon(), true},
		{"no icon", noMethod, bare, false, icons.Icon{}, false},
		{"no plugin", post, nil, false, icons.Icon{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.GetIcon(tt.action, tt.plugin, tt.remoteIcon)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetIcon_IconSize(t *testing.T) {
	m, err := New(Options{IconSize: 24})
	require.NoError(t, err)
	g, _ := m.LookupGroup(types.ActionKindDB)

	icon, ok := g.GetIcon(types.ActionRecord{}, &types.PluginDescriptor{Type: types.ActionKindDB, IconLocation: "icons/foo.svg"}, false)
	require.True(t, ok)
	assert.Equal(t, 24, icon.Size)
	assert.Equal(t, "icons/foo.svg", icon.Src, "without a resolver the location is used as is")
}

func TestNewMap_Validate(t *testing.T) {
	noURL := func(string, string, types.ActionKind, *types.PluginDescriptor) string { return "" }
	noIcon := func(types.ActionRecord, *types.PluginDescriptor, bool) (icons.Icon, bool) { return icons.Icon{}, false }

	t.Run("uncovered kind", func(t *testing.T) {
		_, err := NewMap(NewGroupConfig("Apis", []types.ActionKind{types.ActionKindAPI}, icons.Icon{}, noURL, noIcon))
		assert.True(t, errors.IsErrorCode(err, errors.ErrKindUncovered))
	})

	t.Run("overlapping kind", func(t *testing.T) {
		_, err := NewMap(
			NewGroupConfig("All", types.AllActionKinds(), icons.Icon{}, noURL, noIcon),
			NewGroupConfig("Dbs", []types.ActionKind{types.ActionKindDB}, icons.Icon{}, noURL, noIcon),
		)
		assert.True(t, errors.IsErrorCode(err, errors.ErrKindOverlap))
	})

	t.Run("unknown kind", func(t *testing.T) {
		kinds := append(types.AllActionKinds(), types.ActionKind("JS"))
		_, err := NewMap(NewGroupConfig("All", kinds, icons.Icon{}, noURL, noIcon))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidKind))
	})

	t.Run("split groups", func(t *testing.T) {
		m, err := NewMap(
			NewGroupConfig("Apis", []types.ActionKind{types.ActionKindAPI, types.ActionKindSaaS}, icons.Icon{}, noURL, noIcon),
			NewGroupConfig("Queries", []types.ActionKind{types.ActionKindDB, types.ActionKindRemote, types.ActionKindAI, types.ActionKindInternal}, icons.Icon{}, noURL, noIcon),
		)
		require.NoError(t, err)
		g, ok := m.LookupGroup(types.ActionKindAI)
		require.True(t, ok)
		assert.Equal(t, "Queries", g.GroupName)
	})
}

func TestGroupKeysAreDistinct(t *testing.T) {
	a := newTestMap(t).Groups()[0]
	b := newTestMap(t).Groups()[0]
	assert.NotEqual(t, a.Key, b.Key)
}
