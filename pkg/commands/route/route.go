package route

import (
	"sort"

	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// RouteOptions defines the options for the Route command
type RouteOptions struct {
	App      *core.App
	Kind     string
	PageID   string
	ActionID string
	// PluginID is optional; when set it must name a plugin of Kind
	PluginID string
}

// RouteResult is the editor path of one action
type RouteResult struct {
	Kind     types.ActionKind `json:"kind"`
	Group    string           `json:"group,omitempty"`
	PageID   string           `json:"pageId"`
	ActionID string           `json:"actionId"`
	PluginID string           `json:"pluginId,omitempty"`
	Path     string           `json:"path"`
	Found    bool             `json:"found"`
}

// String renders the path, or a dash when no group covers the kind
func (r *RouteResult) String() string {
	if !r.Found {
		return "-"
	}
	return r.Path
}

// Route resolves the editor path of an action
func Route(opts RouteOptions) (*RouteResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Route").Str("kind", opts.Kind).Msg("Executing command")

	if opts.PageID == "" || opts.ActionID == "" {
		return nil, errors.New(errors.ErrInvalidInput, "page id and action id are required")
	}

	kind, err := types.ParseActionKind(opts.Kind)
	if err != nil {
		if suggestions := SuggestKinds(opts.Kind); len(suggestions) > 0 {
			return nil, errors.Wrapf(err, errors.ErrInvalidKind, "did you mean %s?", suggestions[0])
		}
		return nil, err
	}

	var plugin *types.PluginDescriptor
	if opts.PluginID != "" {
		p, err := opts.App.Catalog.GetKind(kind, opts.PluginID)
		if err != nil {
			return nil, err
		}
		plugin = &p
	}

	result := &RouteResult{
		Kind:     kind,
		PageID:   opts.PageID,
		ActionID: opts.ActionID,
		PluginID: opts.PluginID,
	}

	group, ok := opts.App.Explorer.LookupGroup(kind)
	if !ok {
		log.Warn().Str("kind", string(kind)).Msg("No group covers kind")
		return result, nil
	}
	result.Group = group.GroupName
	result.Path = group.GetURL(opts.PageID, opts.ActionID, kind, plugin)
	result.Found = true

	log.Info().Str("command", "Route").Str("path", result.Path).Msg("Command finished")
	return result, nil
}

// SuggestKinds returns the kinds closest to input, best match first
func SuggestKinds(input string) []string {
	names := make([]string, 0, len(types.AllActionKinds()))
	for _, k := range types.AllActionKinds() {
		names = append(names, string(k))
	}

	ranks := fuzzy.RankFindFold(input, names)
	if len(ranks) == 0 {
		// kinds spelled inside a longer input, e.g. "dbs"
		for _, name := range names {
			if fuzzy.MatchFold(name, input) {
				ranks = append(ranks, fuzzy.Rank{Target: name, Distance: fuzzy.LevenshteinDistance(name, input)})
			}
		}
	}
	sort.Sort(ranks)

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}
