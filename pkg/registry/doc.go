// Package registry provides a generic, type-safe, insertion-ordered
// registry. actionkit uses it to hold the plugin catalog.
package registry
