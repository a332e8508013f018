// Package types defines the core data model shared across actionkit:
// the closed set of action kinds, plugin descriptors and action records.
package types
