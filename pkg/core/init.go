package core

import (
	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/arthur-debert/actionkit/pkg/logging"
)

// Initialize loads the configuration layers and installs the result as the
// global configuration
func Initialize(opts config.LoadOptions) error {
	logger := logging.GetLogger("core.init")

	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}
	config.Initialize(cfg)

	logger.Debug().Msg("Core initialization completed")
	return nil
}

// MustInitialize calls Initialize with the default layers and panics on
// error
func MustInitialize() {
	if err := Initialize(config.LoadOptions{}); err != nil {
		panic("Core initialization failed: " + err.Error())
	}
}
