// Package paths provides centralized path handling for actionkit.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/actionkit (config.toml, plugins.yaml)
//   - State:  $XDG_STATE_HOME/actionkit (actionkit.log)
//
// # Environment Variables
//
//   - ACTIONKIT_CONFIG_DIR: Override the config directory
//   - ACTIONKIT_STATE_DIR: Override the state directory
package paths
