package validate

// Message constants
const (
	MsgShort = "Check the kind table and plugin coverage"
	MsgLong  = "Check that every action kind is covered by exactly one explorer group and report kinds that no catalog plugin serves."
)
