// Package commands holds the command implementations behind the CLI.
//
// Each command lives in its own subpackage and takes an Options struct
// carrying the assembled core.App:
//   - kinds/       - the kind table
//   - route/       - editor path of an action
//   - icon/        - explorer icon of a plugin's actions
//   - name/        - collision-free action names
//   - importer/    - application export import
//   - listplugins/ - plugin catalog listing
//   - validate/    - kind partition and plugin coverage checks
//
// Results implement ui.Tabular so every output format can render them.
package commands
