// Package app wires the application together: it configures the logger,
// discovers and loads schema manifests into a registry, and runs the
// requested introspection or projection action.
package app
