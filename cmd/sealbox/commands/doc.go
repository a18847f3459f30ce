// Package commands defines the sealbox CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - keygen   Generate a fresh random key
//   - encrypt  Seal a message into a token
//   - decrypt  Open a token and print the message
//
// # Implementation
//
// The root command resolves the default key (--key flag, then SEALBOX_KEY
// from the environment or a .env file) and builds the encryption service
// before any subcommand runs, so handlers share one app context.
package commands
