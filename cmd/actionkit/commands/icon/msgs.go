package icon

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort          = "Show the explorer icon for actions of a plugin"
	MsgFlagMethod     = "HTTP method configured on the action"
	MsgFlagRemoteIcon = "Prefer the plugin icon over the method badge"
	MsgFlagMarkup     = "Also print the icon as HTML markup"
)

// Embedded message files
var (
	//go:embed icon-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed icon-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
