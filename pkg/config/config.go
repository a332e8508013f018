package config

import (
	"strings"

	"github.com/arthur-debert/actionkit/pkg/errors"
)

// Config is the complete actionkit configuration
type Config struct {
	Routes  Routes  `koanf:"routes"`
	Icons   Icons   `koanf:"icons"`
	Assets  Assets  `koanf:"assets"`
	Naming  Naming  `koanf:"naming"`
	Plugins Plugins `koanf:"plugins"`
}

// Routes configures editor path building
type Routes struct {
	BasePath string `koanf:"base_path"`
}

// Icons configures icon rendering
type Icons struct {
	EntitySize int `koanf:"entity_size"`
}

// Assets configures asset URL rewriting
type Assets struct {
	CDNHost     string `koanf:"cdn_host"`
	Airgapped   bool   `koanf:"airgapped"`
	LocalPrefix string `koanf:"local_prefix"`
}

// Naming configures the unique name generator
type Naming struct {
	CopySuffix string `koanf:"copy_suffix"`
	MaxSuffix  int    `koanf:"max_suffix"`
}

// Plugins configures the plugin catalog
type Plugins struct {
	File string `koanf:"file"`
}

// Default returns the configuration described by the embedded defaults
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	if err != nil {
		// The embedded defaults are part of the binary; failing to read them
		// is a build defect.
		panic(err)
	}
	return cfg
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Routes.BasePath, "/") {
		return errors.Newf(errors.ErrConfigValid, "routes.base_path must start with '/', got %q", c.Routes.BasePath)
	}
	if c.Icons.EntitySize <= 0 {
		return errors.Newf(errors.ErrConfigValid, "icons.entity_size must be positive, got %d", c.Icons.EntitySize)
	}
	if c.Naming.MaxSuffix < 0 {
		return errors.Newf(errors.ErrConfigValid, "naming.max_suffix must not be negative, got %d", c.Naming.MaxSuffix)
	}
	if c.Assets.Airgapped && c.Assets.CDNHost == "" {
		return errors.New(errors.ErrConfigValid, "assets.cdn_host is required when assets.airgapped is set")
	}
	return nil
}
