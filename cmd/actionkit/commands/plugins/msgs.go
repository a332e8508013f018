package plugins

// Message constants
const (
	MsgShort    = "List the plugin catalog"
	MsgLong     = "List the built-in plugins together with the plugins read from plugins.file, with their kind and resolved icon URL."
	MsgFlagKind = "Only list plugins of this kind"
)
