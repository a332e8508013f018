package kinds

// Message constants
const (
	MsgShort   = "List every action kind and the group that routes it"
	MsgLong    = "List the closed set of action kinds, the explorer group covering each kind and the editor an action of that kind opens in."
	MsgExample = `  actionkit kinds
  actionkit kinds --format json`
)
