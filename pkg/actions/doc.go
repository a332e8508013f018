// Package actions owns the in-memory action collection.
//
// A Store holds an immutable Snapshot of action records and notifies
// subscribers after every change. Records come from YAML or TOML action
// files, or from an application export (see ImportExport).
package actions
