// Package table defines the tabular result shapes shared by the renderers.
package table

// Tabular is implemented by results shown as a table
type Tabular interface {
	Header() []string
	Rows() [][]string
}

// Styled is implemented by tables with a colored rendition for terminals
type Styled interface {
	Tabular
	StyledRows() [][]string
}

// Data returns the header followed by the rows
func Data(t Tabular) [][]string {
	rows := t.Rows()
	data := make([][]string, 0, len(rows)+1)
	data = append(data, t.Header())
	return append(data, rows...)
}

// StyledData is Data using the styled rows when t provides them
func StyledData(t Tabular) [][]string {
	s, ok := t.(Styled)
	if !ok {
		return Data(t)
	}
	rows := s.StyledRows()
	data := make([][]string, 0, len(rows)+1)
	data = append(data, t.Header())
	return append(data, rows...)
}
