package actions

import (
	"fmt"

	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/types"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/tidwall/gjson"
)

// Page is a page found in an application export
type Page struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// SkippedAction is an export action that could not be attached to a page
type SkippedAction struct {
	Name   string `json:"name"`
	PageID string `json:"pageId"`
	Reason string `json:"reason"`
}

// Import is the result of reading an application export
type Import struct {
	Pages   []Page               `json:"pages"`
	Actions []types.ActionRecord `json:"actions"`
	Skipped []SkippedAction      `json:"skipped,omitempty"`

	// used maps the id of every page that received an action to its name
	used map[string]string
}

// ImportOptions tunes ImportExport
type ImportOptions struct {
	// DefaultPageID receives actions that do not name a page. When empty,
	// the export's default page is used.
	DefaultPageID string
}

// ImportExport reads the pages and actions of an application export.
// Actions without a page go to the default page; actions whose page is
// not part of the export are skipped.
func ImportExport(data []byte, opts ImportOptions) (*Import, error) {
	logger := logging.GetLogger("actions")

	if !gjson.ValidBytes(data) {
		return nil, errors.New(errors.ErrActionsParse, "application export is not valid JSON")
	}
	doc := gjson.ParseBytes(data)

	pageList := doc.Get("pageList")
	if !pageList.IsArray() {
		return nil, errors.New(errors.ErrImportInvalid, "application export has no pageList")
	}

	defaultRef := doc.Get(`exportedApplication.pages.#(isDefault==true).id`).String()

	imp := &Import{used: make(map[string]string)}
	pages := make(map[string]Page)
	for i, p := range pageList.Array() {
		name := firstString(p, "unpublishedPage.name", "publishedPage.name")
		ref := firstString(p, "id", "unpublishedPage.name", "publishedPage.name")
		if ref == "" {
			return nil, errors.Newf(errors.ErrImportInvalid, "page %d has neither id nor name", i)
		}
		if name == "" {
			name = ref
		}
		page := Page{ID: ref, Name: name, IsDefault: defaultRef != "" && (ref == defaultRef || name == defaultRef)}
		pages[ref] = page
		pages[name] = page
		if gitSyncID := p.Get("gitSyncId").String(); gitSyncID != "" {
			pages[gitSyncID] = page
		}
		imp.Pages = append(imp.Pages, page)
	}

	fallback := opts.DefaultPageID
	if fallback == "" {
		fallback = defaultRef
	}
	if fallback == "" && len(imp.Pages) > 0 {
		fallback = imp.Pages[0].ID
	}

	for i, a := range doc.Get("actionList").Array() {
		dto := a.Get("unpublishedAction")
		if !dto.Exists() {
			dto = a.Get("publishedAction")
		}
		name := dto.Get("name").String()
		pageRef := dto.Get("pageId").String()
		if pageRef == "" {
			pageRef = fallback
		}

		page, ok := pages[pageRef]
		if !ok {
			imp.Skipped = append(imp.Skipped, SkippedAction{Name: name, PageID: pageRef, Reason: "page not in export"})
			continue
		}

		kind, err := types.ParseActionKind(firstString(a, "pluginType", "unpublishedAction.pluginType"))
		if err != nil {
			imp.Skipped = append(imp.Skipped, SkippedAction{Name: name, PageID: pageRef, Reason: err.Error()})
			continue
		}

		id := firstString(a, "id", "gitSyncId")
		switch {
		case id != "":
		case name != "":
			id = fmt.Sprintf("%s_%s", page.ID, name)
		default:
			id = fmt.Sprintf("action-%d", i)
		}

		imp.Actions = append(imp.Actions, types.ActionRecord{
			ID:       id,
			Name:     name,
			PageID:   page.ID,
			Kind:     kind,
			PluginID: a.Get("pluginId").String(),
			Config: types.ActionConfiguration{
				HTTPMethod: dto.Get("actionConfiguration.httpMethod").String(),
				Path:       dto.Get("actionConfiguration.path").String(),
			},
		})
		imp.used[page.ID] = page.Name
	}

	logger.Debug().
		Int("pages", len(imp.Pages)).
		Int("actions", len(imp.Actions)).
		Int("skipped", len(imp.Skipped)).
		Msg("Imported application export")
	return imp, nil
}

// ContextNames returns the names of the pages that received at least one
// action, in page order
func (imp *Import) ContextNames() []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	names := make([]string, 0, len(imp.used))
	for _, p := range imp.Pages {
		if name, ok := imp.used[p.ID]; ok && seen.Add(p.ID) {
			names = append(names, name)
		}
	}
	return names
}

// RenameContext moves every record on page oldID to page newID and returns
// the updated copy
func RenameContext(records []types.ActionRecord, oldID, newID string) []types.ActionRecord {
	out := clone(records)
	for i := range out {
		if out[i].PageID == oldID {
			out[i].PageID = newID
		}
	}
	return out
}

func firstString(r gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := r.Get(p).String(); v != "" {
			return v
		}
	}
	return ""
}
