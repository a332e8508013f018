package name

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort       = "Pick a collision-free name for a new action"
	MsgFlagPage    = "Page the new action belongs to"
	MsgFlagActions = "File holding the existing actions (.yaml, .toml or export .json)"
	MsgFlagCopy    = "The action is a copy; apply the copy suffix before numbering"
)

// Embedded message files
var (
	//go:embed name-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed name-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
