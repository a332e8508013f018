package types

// ActionConfiguration is the subset of an action's configuration the
// explorer reads
type ActionConfiguration struct {
	HTTPMethod string `yaml:"httpMethod,omitempty" json:"httpMethod,omitempty" toml:"http_method,omitempty"`
	Path       string `yaml:"path,omitempty" json:"path,omitempty" toml:"path,omitempty"`
}

// ActionRecord is an action entity owned by a page
type ActionRecord struct {
	ID       string              `yaml:"id" json:"id" toml:"id"`
	Name     string              `yaml:"name" json:"name" toml:"name"`
	PageID   string              `yaml:"pageId" json:"pageId" toml:"page_id"`
	Kind     ActionKind          `yaml:"kind" json:"kind" toml:"kind"`
	PluginID string              `yaml:"pluginId,omitempty" json:"pluginId,omitempty" toml:"plugin_id,omitempty"`
	Config   ActionConfiguration `yaml:"config,omitempty" json:"config,omitempty" toml:"config,omitempty"`
}

// HTTPMethod returns the configured HTTP method, empty when none is set
func (a ActionRecord) HTTPMethod() string {
	return a.Config.HTTPMethod
}
