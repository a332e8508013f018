package naming

import (
	"sync/atomic"

	"github.com/arthur-debert/actionkit/pkg/actions"
	"github.com/arthur-debert/actionkit/pkg/logging"
	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultCopySuffix is appended to the name of a copied action before
// numbering
const DefaultCopySuffix = "Copy"

// Source provides the action collection and change notifications
type Source interface {
	Snapshot() actions.Snapshot
	Subscribe(fn actions.Listener) func()
}

// Options configures a Generator
type Options struct {
	CopySuffix string
	// MaxSuffix caps the numeric suffix; 0 means no cap
	MaxSuffix int
}

// pageIndex is the set of action names per page for one snapshot version
type pageIndex struct {
	version uint64
	pages   map[string]mapset.Set[string]
}

// Generator resolves collision-free action names
type Generator struct {
	opts        Options
	index       atomic.Pointer[pageIndex]
	unsubscribe func()
}

// New creates a Generator over source. Close releases the subscription.
func New(source Source, opts Options) *Generator {
	if opts.CopySuffix == "" {
		opts.CopySuffix = DefaultCopySuffix
	}
	g := &Generator{opts: opts}
	g.unsubscribe = source.Subscribe(g.refresh)
	g.refresh(source.Snapshot())
	return g
}

// ResolveName returns desired when no action on pageID uses it, and
// otherwise the first free numbered variant of desired, or of desired plus
// the copy suffix when isCopy is set
func (g *Generator) ResolveName(desired, pageID string, isCopy bool) (string, error) {
	names := g.Names(pageID)
	if !names.Contains(desired) {
		return desired, nil
	}

	base := desired
	if isCopy {
		base = desired + g.opts.CopySuffix
	}
	name, err := NextEntityName(base, names, g.opts.MaxSuffix)
	if err != nil {
		return "", err
	}

	logger := logging.GetLogger("naming")
	logger.Debug().
		Str("desired", desired).
		Str("page", pageID).
		Bool("copy", isCopy).
		Str("resolved", name).
		Msg("Resolved name collision")
	return name, nil
}

// Names returns the action names on pageID. The set is shared and must
// not be modified.
func (g *Generator) Names(pageID string) mapset.Set[string] {
	if names, ok := g.index.Load().pages[pageID]; ok {
		return names
	}
	return mapset.NewThreadUnsafeSet[string]()
}

// Version returns the snapshot version the index was built from
func (g *Generator) Version() uint64 {
	return g.index.Load().version
}

// Close stops following the source
func (g *Generator) Close() {
	g.unsubscribe()
}

// refresh builds a fresh index for snap. Notifications may arrive out of
// order, so an index never replaces a newer one.
func (g *Generator) refresh(snap actions.Snapshot) {
	next := buildIndex(snap)
	for {
		current := g.index.Load()
		if current != nil && current.version >= next.version {
			return
		}
		if g.index.CompareAndSwap(current, next) {
			return
		}
	}
}

func buildIndex(snap actions.Snapshot) *pageIndex {
	pages := make(map[string]mapset.Set[string])
	for _, a := range snap.Actions {
		names, ok := pages[a.PageID]
		if !ok {
			names = mapset.NewThreadUnsafeSet[string]()
			pages[a.PageID] = names
		}
		names.Add(a.Name)
	}
	return &pageIndex{version: snap.Version, pages: pages}
}
