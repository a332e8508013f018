package name

import (
	"github.com/arthur-debert/actionkit/pkg/actions"
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/naming"
)

// NameOptions defines the options for the Name command
type NameOptions struct {
	App *core.App
	// ActionsFile holds the existing actions (.yaml, .toml or an export .json)
	ActionsFile string
	Desired     string
	PageID      string
	IsCopy      bool
}

// NameResult is the name picked for a new action
type NameResult struct {
	Desired  string `json:"desired"`
	PageID   string `json:"pageId"`
	IsCopy   bool   `json:"isCopy"`
	Name     string `json:"name"`
	Changed  bool   `json:"changed"`
	Existing int    `json:"existingOnPage"`
}

// String returns the resolved name
func (r *NameResult) String() string {
	return r.Name
}

// ResolveName loads the existing actions and picks a collision-free name
// on the target page
func ResolveName(opts NameOptions) (*NameResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ResolveName").Str("desired", opts.Desired).Msg("Executing command")

	if opts.PageID == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a target page id is required")
	}

	store, err := actions.NewStore()
	if err != nil {
		return nil, err
	}
	if opts.ActionsFile != "" {
		records, err := actions.LoadFile(opts.App.Fs, opts.ActionsFile)
		if err != nil {
			return nil, err
		}
		if err := store.Replace(records); err != nil {
			return nil, err
		}
	}

	gen := naming.New(store, opts.App.NamingOptions())
	defer gen.Close()

	resolved, err := gen.ResolveName(opts.Desired, opts.PageID, opts.IsCopy)
	if err != nil {
		return nil, err
	}

	result := &NameResult{
		Desired:  opts.Desired,
		PageID:   opts.PageID,
		IsCopy:   opts.IsCopy,
		Name:     resolved,
		Changed:  resolved != opts.Desired,
		Existing: gen.Names(opts.PageID).Cardinality(),
	}

	log.Info().Str("command", "ResolveName").Str("name", resolved).Msg("Command finished")
	return result, nil
}
