// Package naming picks action names that do not collide with the names of
// sibling actions on the same page.
//
// A Generator watches an action source and keeps a per-page index of
// names. ResolveName returns the desired name when it is free on the
// target page, and otherwise the first free numbered variant:
//
//	existing on page-A: Query1, Query11
//	ResolveName("Query1", "page-A", false) -> "Query12"
//	ResolveName("Query1", "page-A", true)  -> "Query1Copy1"
//
// Names on other pages are never considered.
package naming
