// Package routes builds the editor paths an action can be opened in.
package routes

import (
	"net/url"
	"path"
	"strings"
)

// DefaultBasePath is used when a Builder is created with an empty base path
const DefaultBasePath = "/app"

// Builder creates normalized, relative editor paths for a page
type Builder struct {
	basePath string
}

// NewBuilder returns a Builder rooted at basePath
func NewBuilder(basePath string) *Builder {
	if basePath == "" {
		basePath = DefaultBasePath
	}
	return &Builder{basePath: path.Clean("/" + basePath)}
}

// BasePath returns the normalized base path
func (b *Builder) BasePath() string {
	return b.basePath
}

// APIEditorIDURL returns the API editor path for an action
func (b *Builder) APIEditorIDURL(parentEntityID, apiID string) string {
	return b.pagePath(parentEntityID, "api", apiID)
}

// QueryEditorIDURL returns the query editor path for an action
func (b *Builder) QueryEditorIDURL(parentEntityID, queryID string) string {
	return b.pagePath(parentEntityID, "queries", queryID)
}

// SaaSEditorAPIIDURL returns the SaaS editor path for an action served by
// the given connector package
func (b *Builder) SaaSEditorAPIIDURL(parentEntityID, pluginPackageName, apiID string) string {
	return b.pagePath(parentEntityID, "saas", pluginPackageName, "api", apiID)
}

// pagePath joins escaped segments under the base path. The result is not
// cleaned, so an empty id stays visible as an empty segment.
func (b *Builder) pagePath(parentEntityID string, segments ...string) string {
	parts := make([]string, 0, len(segments)+3)
	parts = append(parts, strings.TrimSuffix(b.basePath, "/"), escape(parentEntityID), "edit")
	for _, s := range segments {
		parts = append(parts, escape(s))
	}
	return strings.Join(parts, "/")
}

// escape keeps ids from adding or removing path segments. Dot segments
// are percent-encoded because PathEscape leaves them alone.
func escape(segment string) string {
	switch segment {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	}
	return url.PathEscape(segment)
}
