package actionkit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Route, decorate and name Appsmith actions"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgNoPlugins = "No plugins found."
	MsgNoIcon    = "No icon applies to actions of plugin '%s'."

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrInitConfig = "failed to load configuration: %w"
	MsgErrBuildApp   = "failed to assemble catalog and routes: %w"
	MsgErrHelpCmd    = "help command not found"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/actionkit/config.toml)"
	MsgFlagFormat  = "Output format (auto, term, text, json)"
	MsgFlagSet     = "Override a config key (key=value, repeatable)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
