package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderPaths(t *testing.T) {
	b := NewBuilder("/app")

	assert.Equal(t, "/app/page-1/edit/api/api-9", b.APIEditorIDURL("page-1", "api-9"))
	assert.Equal(t, "/app/page-1/edit/queries/q-3", b.QueryEditorIDURL("page-1", "q-3"))
	assert.Equal(t,
		"/app/page-1/edit/saas/google-sheets-plugin/api/s-2",
		b.SaaSEditorAPIIDURL("page-1", "google-sheets-plugin", "s-2"))
}

func TestNewBuilderNormalizesBasePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/app"},
		{"/app/", "/app"},
		{"builder", "/builder"},
		{"//nested//base/", "/nested/base"},
		{"/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBuilder(tt.in).BasePath())
		})
	}

	assert.Equal(t, "/page/edit/api/a", NewBuilder("/").APIEditorIDURL("page", "a"))
}

func TestIDsCannotAddSegments(t *testing.T) {
	b := NewBuilder("/app")
	assert.Equal(t, "/app/p%2F..%2Fx/edit/api/a%2Fb", b.APIEditorIDURL("p/../x", "a/b"))
}

func TestDotSegmentsAreEncoded(t *testing.T) {
	b := NewBuilder("/app")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"dot-dot page", b.APIEditorIDURL("..", "x"), "/app/%2E%2E/edit/api/x"},
		{"dot page", b.APIEditorIDURL(".", "x"), "/app/%2E/edit/api/x"},
		{"dot-dot action", b.QueryEditorIDURL("p", ".."), "/app/p/edit/queries/%2E%2E"},
		{"dot-dot package", b.SaaSEditorAPIIDURL("p", "..", "s"), "/app/p/edit/saas/%2E%2E/api/s"},
		{"dots inside id", b.QueryEditorIDURL("p", "a..b"), "/app/p/edit/queries/a..b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEmptyIDsKeepTheirSegment(t *testing.T) {
	b := NewBuilder("/app")

	assert.Equal(t, "/app//edit/api/x", b.APIEditorIDURL("", "x"))
	assert.Equal(t, "/app/p/edit/queries/", b.QueryEditorIDURL("p", ""))
}
