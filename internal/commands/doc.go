// Package commands provides the command-line interface for the seed2key tool.
//
// It implements commands for:
//   - deriving a single unlock key
//   - deriving keys for a batch of requests
//   - listing and checking the mask table
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
