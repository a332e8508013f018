// Package config handles configuration management for actionkit.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults.toml
//  2. the user config file ($XDG_CONFIG_HOME/actionkit/config.toml, or --config)
//  3. ACTIONKIT_* environment variables (ACTIONKIT_NAMING_MAX_SUFFIX=50
//     sets naming.max_suffix)
package config
