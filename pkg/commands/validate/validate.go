package validate

import (
	"strings"

	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/types"
)

// ValidateOptions defines the options for the Validate command
type ValidateOptions struct {
	App *core.App
}

// GroupInfo summarises one group of the kind table
type GroupInfo struct {
	Name  string             `json:"name"`
	Key   string             `json:"key"`
	Kinds []types.ActionKind `json:"kinds"`
}

// ValidateResult reports the state of the kind table and plugin catalog
type ValidateResult struct {
	Groups []GroupInfo `json:"groups"`
	// Unserved lists kinds no catalog plugin serves
	Unserved []types.ActionKind `json:"unserved,omitempty"`
	Plugins  int                `json:"plugins"`
}

// Header implements ui.Tabular
func (r *ValidateResult) Header() []string {
	return []string{"CHECK", "RESULT"}
}

// Rows implements ui.Tabular
func (r *ValidateResult) Rows() [][]string {
	rows := [][]string{{"kind partition", "ok"}}
	for _, g := range r.Groups {
		kinds := make([]string, 0, len(g.Kinds))
		for _, k := range g.Kinds {
			kinds = append(kinds, string(k))
		}
		rows = append(rows, []string{"group " + g.Name, strings.Join(kinds, ",")})
	}
	if len(r.Unserved) == 0 {
		rows = append(rows, []string{"plugin coverage", "ok"})
	}
	for _, k := range r.Unserved {
		rows = append(rows, []string{"plugin coverage", "no plugin serves " + string(k)})
	}
	return rows
}

// Validate checks that the kind table partitions the kind set and reports
// kinds no plugin serves
func Validate(opts ValidateOptions) (*ValidateResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Validate").Msg("Executing command")

	if err := opts.App.Explorer.Validate(); err != nil {
		return nil, err
	}

	result := &ValidateResult{Plugins: opts.App.Catalog.Len()}
	for _, g := range opts.App.Explorer.Groups() {
		result.Groups = append(result.Groups, GroupInfo{Name: g.GroupName, Key: g.Key, Kinds: g.Types})
	}

	served := make(map[types.ActionKind]bool)
	for _, p := range opts.App.Catalog.All() {
		served[p.Type] = true
	}
	for _, kind := range types.AllActionKinds() {
		if !served[kind] {
			result.Unserved = append(result.Unserved, kind)
		}
	}

	log.Info().Str("command", "Validate").Int("unserved", len(result.Unserved)).Msg("Command finished")
	return result, nil
}
