package route

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort      = "Print the editor path of an action"
	MsgFlagPlugin = "Plugin backing the action (must serve the kind)"
)

// Embedded message files
var (
	//go:embed route-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed route-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
