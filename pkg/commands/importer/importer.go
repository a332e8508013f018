package importer

import (
	"sort"

	"github.com/arthur-debert/actionkit/pkg/actions"
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/logging"
)

// ImportOptions defines the options for the Import command
type ImportOptions struct {
	App           *core.App
	Path          string
	DefaultPageID string
	// Renames maps an exported page id to the id it takes after import.
	// Renames are applied in sorted order of the exported id.
	Renames map[string]string
}

// ImportedAction is one imported action with its editor path
type ImportedAction struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	PageID string `json:"pageId"`
	Kind   string `json:"kind"`
	Route  string `json:"route"`
}

// ImportResult summarises an application export
type ImportResult struct {
	Pages        []actions.Page          `json:"pages"`
	ContextNames []string                `json:"contextNames"`
	Actions      []ImportedAction        `json:"actions"`
	Skipped      []actions.SkippedAction `json:"skipped,omitempty"`
}

// Header implements ui.Tabular
func (r *ImportResult) Header() []string {
	return []string{"ACTION", "PAGE", "KIND", "ROUTE"}
}

// Rows implements ui.Tabular. Skipped actions are listed last.
func (r *ImportResult) Rows() [][]string {
	rows := make([][]string, 0, len(r.Actions)+len(r.Skipped))
	for _, a := range r.Actions {
		rows = append(rows, []string{a.Name, a.PageID, a.Kind, a.Route})
	}
	for _, s := range r.Skipped {
		rows = append(rows, []string{s.Name, s.PageID, "-", "skipped: " + s.Reason})
	}
	return rows
}

// Import reads an application export and computes the editor path of
// every imported action
func Import(opts ImportOptions) (*ImportResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Import").Str("path", opts.Path).Msg("Executing command")

	data, err := readFile(opts)
	if err != nil {
		return nil, err
	}

	imp, err := actions.ImportExport(data, actions.ImportOptions{DefaultPageID: opts.DefaultPageID})
	if err != nil {
		return nil, err
	}

	records := imp.Actions
	oldIDs := make([]string, 0, len(opts.Renames))
	for oldID := range opts.Renames {
		oldIDs = append(oldIDs, oldID)
	}
	sort.Strings(oldIDs)
	for _, oldID := range oldIDs {
		records = actions.RenameContext(records, oldID, opts.Renames[oldID])
	}

	result := &ImportResult{
		Pages:        imp.Pages,
		ContextNames: imp.ContextNames(),
		Skipped:      imp.Skipped,
	}
	for _, rec := range records {
		item := ImportedAction{ID: rec.ID, Name: rec.Name, PageID: rec.PageID, Kind: string(rec.Kind)}
		if group, ok := opts.App.Explorer.LookupGroup(rec.Kind); ok {
			plugin := lookupPlugin(opts.App, rec.Kind, rec.PluginID)
			item.Route = group.GetURL(rec.PageID, rec.ID, rec.Kind, plugin)
		}
		result.Actions = append(result.Actions, item)
	}

	log.Info().
		Str("command", "Import").
		Int("actions", len(result.Actions)).
		Int("skipped", len(result.Skipped)).
		Msg("Command finished")
	return result, nil
}
