// Package core assembles the explorer collaborators from configuration.
//
// An App bundles the plugin catalog, the asset resolver, the route builder
// and the kind table so commands share one consistent setup.
package core
