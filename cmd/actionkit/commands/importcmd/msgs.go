package importcmd

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort           = "Import the actions of an application export"
	MsgFlagDefaultPage = "Page receiving actions that name no page (defaults to the export's default page)"
	MsgFlagRename      = "Rename a page id after import (old=new, repeatable)"
)

// Embedded message files
var (
	//go:embed import-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed import-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
