// Package app wires application dependencies for the CLI.
//
// It resolves Config from defaults, an optional YAML file and the
// environment, then builds the logger, link codec and link service from it,
// exposing them via the Wire struct for commands to use.
package app
