package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for actionkit
	EnvConfigDir = "ACTIONKIT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for actionkit
	EnvStateDir = "ACTIONKIT_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name used under every XDG base dir
	AppDirName = "actionkit"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// PluginsFileName is the optional user plugin catalog
	PluginsFileName = "plugins.yaml"

	// LogFileName is the name of the log file
	LogFileName = "actionkit.log"
)

// Paths resolves the directories actionkit reads from and writes to
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves paths from the environment. XDG variables are re-read on
// every call so tests can point them at temporary directories.
func New() *Paths {
	xdg.Reload()

	p := &Paths{}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}
	return p
}

// ConfigDir returns the user configuration directory
func (p *Paths) ConfigDir() string { return p.configDir }

// StateDir returns the state directory
func (p *Paths) StateDir() string { return p.stateDir }

// ConfigFilePath returns the path of the user config file
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// PluginsFilePath returns the path of the user plugin catalog
func (p *Paths) PluginsFilePath() string {
	return filepath.Join(p.configDir, PluginsFileName)
}

// LogFilePath returns the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
