// Package assets rewrites plugin icon locations into deployable URLs.
package assets

import (
	"net/url"
	"path"
	"strings"

	"github.com/arthur-debert/actionkit/pkg/config"
)

// URLResolver rewrites a raw asset reference into a deployable URL
type URLResolver interface {
	AssetURL(raw string) string
}

// Resolver serves assets from a CDN, or from a local prefix when the
// deployment is air-gapped
type Resolver struct {
	cdn         *url.URL
	airgapped   bool
	localPrefix string
}

// NewResolver creates a Resolver from the assets configuration
func NewResolver(cfg config.Assets) *Resolver {
	r := &Resolver{
		airgapped:   cfg.Airgapped,
		localPrefix: cfg.LocalPrefix,
	}
	if r.localPrefix == "" {
		r.localPrefix = "/"
	}
	if u, err := url.Parse(strings.TrimSuffix(cfg.CDNHost, "/") + "/"); err == nil && u.Host != "" {
		r.cdn = u
	}
	return r
}

// AssetURL rewrites raw. Relative references are anchored at the CDN, or
// at the local prefix when air-gapped. Absolute CDN URLs are rewritten to
// the local prefix when air-gapped. Anything else is returned unchanged.
func (r *Resolver) AssetURL(raw string) string {
	if raw == "" {
		return ""
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	if ref.IsAbs() || ref.Host != "" {
		if r.airgapped && r.cdn != nil && strings.EqualFold(ref.Host, r.cdn.Host) {
			return r.local(ref)
		}
		return raw
	}

	if r.airgapped || r.cdn == nil {
		return r.local(ref)
	}
	return r.cdn.ResolveReference(ref).String()
}

// local moves ref under the local prefix, keeping its query and fragment
func (r *Resolver) local(ref *url.URL) string {
	joined := path.Join(r.localPrefix, ref.Path)
	if !strings.HasPrefix(joined, "/") && strings.HasPrefix(r.localPrefix, "/") {
		joined = "/" + joined
	}
	if ref.RawQuery != "" {
		joined += "?" + ref.RawQuery
	}
	if ref.Fragment != "" {
		joined += "#" + ref.EscapedFragment()
	}
	return joined
}
