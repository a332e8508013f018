// Package testutil provides utilities for testing actionkit components.
//
// Key components:
//   - TestEnvironment: an in-memory filesystem and configuration from which
//     an App is assembled
//   - FileTree: declarative file setup
//   - Action and ActionsYAML: action record fixtures
//
// All test data should be defined inline, not in external files.
package testutil
