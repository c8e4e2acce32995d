// Package commands defines the hyperlink CLI and wires dependencies for subcommands.
//
// Commands
//
//   - create         Generate a new link and print it with its public key
//   - recover        Rebuild the keypair behind an existing link
//   - versions       List the supported link versions
//
// # Implementation
//
// The root command resolves configuration (flags, optional YAML file,
// environment) and builds the dependency graph before any subcommand runs,
// so handlers share one codec and logger. Passwords for v2 links come from
// -p or, when stdin is a terminal, from an echo-free prompt.
package commands
