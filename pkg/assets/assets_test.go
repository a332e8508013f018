package assets

import (
	"testing"

	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Online(t *testing.T) {
	r := NewResolver(config.Assets{CDNHost: "https://assets.appsmith.com", LocalPrefix: "/"})

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"relative path anchored at cdn", "icons/foo.svg", "https://assets.appsmith.com/icons/foo.svg"},
		{"rooted path anchored at cdn", "/logo/postgres.svg", "https://assets.appsmith.com/logo/postgres.svg"},
		{"absolute url untouched", "https://cdn.example.com/a.svg", "https://cdn.example.com/a.svg"},
		{"cdn url untouched", "https://assets.appsmith.com/logo/mysql.svg", "https://assets.appsmith.com/logo/mysql.svg"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.AssetURL(tt.raw))
		})
	}
}

func TestResolver_Airgapped(t *testing.T) {
	r := NewResolver(config.Assets{CDNHost: "https://assets.appsmith.com", Airgapped: true, LocalPrefix: "/static"})

	assert.Equal(t, "/static/logo/mysql.svg", r.AssetURL("https://assets.appsmith.com/logo/mysql.svg"))
	assert.Equal(t, "/static/icons/foo.svg", r.AssetURL("icons/foo.svg"))
	assert.Equal(t, "https://other.example.com/x.svg", r.AssetURL("https://other.example.com/x.svg"))
}

func TestResolver_AirgappedKeepsQueryAndFragment(t *testing.T) {
	r := NewResolver(config.Assets{CDNHost: "https://assets.appsmith.com", Airgapped: true, LocalPrefix: "/static"})

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"cdn url with query", "https://assets.appsmith.com/logo/mysql.svg?v=2", "/static/logo/mysql.svg?v=2"},
		{"cdn url with fragment", "https://assets.appsmith.com/sprite.svg#db", "/static/sprite.svg#db"},
		{"relative with both", "icons/foo.svg?v=3&dark=1#top", "/static/icons/foo.svg?v=3&dark=1#top"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.AssetURL(tt.raw))
		})
	}

	noCDN := NewResolver(config.Assets{LocalPrefix: "/static"})
	assert.Equal(t, "/static/icons/foo.svg?v=1", noCDN.AssetURL("icons/foo.svg?v=1"))
}

func TestResolver_DefaultsLocalPrefix(t *testing.T) {
	r := NewResolver(config.Assets{Airgapped: true})
	assert.Equal(t, "/icons/foo.svg", r.AssetURL("icons/foo.svg"))
}

func TestResolverIsURLResolver(t *testing.T) {
	var _ URLResolver = NewResolver(config.Assets{})
}
