package types

// Plugin package names known to the explorer
const (
	PackageRestAPI      = "restapi-plugin"
	PackageGraphQL      = "graphql-plugin"
	PackageGoogleSheets = "google-sheets-plugin"
	PackagePostgres     = "postgres-plugin"
	PackageMySQL        = "mysql-plugin"
	PackageMongo        = "mongo-plugin"
	PackageOpenAI       = "openai-plugin"
)

// PluginDescriptor describes the connector backing an action
type PluginDescriptor struct {
	ID           string     `yaml:"id" json:"id"`
	Name         string     `yaml:"name" json:"name"`
	PackageName  string     `yaml:"packageName" json:"packageName"`
	Type         ActionKind `yaml:"type" json:"type"`
	IconLocation string     `yaml:"iconLocation,omitempty" json:"iconLocation,omitempty"`
}

// IsGraphQL reports whether the plugin is the GraphQL variant of the API plugin
func (p *PluginDescriptor) IsGraphQL() bool {
	return p != nil && p.PackageName == PackageGraphQL
}

// HasIcon reports whether the plugin carries an icon asset reference
func (p *PluginDescriptor) HasIcon() bool {
	return p != nil && p.IconLocation != ""
}
