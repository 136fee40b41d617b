// Package cli wires up the cobra commands, flags, and viper configuration
// for the two binaries.
package cli
