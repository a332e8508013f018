// Package explorer maps action kinds to the editor route and icon the
// explorer shows for them.
//
// The mapping is a fixed table of groups built once by New. Every kind in
// types.AllActionKinds belongs to exactly one group; New refuses to build a
// table that leaves a kind uncovered or covers one twice.
//
//	m, _ := explorer.New(explorer.Options{Routes: routes.NewBuilder("/app")})
//	group, ok := m.LookupGroup(types.ActionKindDB)
//	if ok {
//		url := group.GetURL(pageID, actionID, types.ActionKindDB, plugin)
//		icon, hasIcon := group.GetIcon(action, plugin, false)
//	}
package explorer
